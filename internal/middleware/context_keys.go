package middleware

import "github.com/gin-gonic/gin"

// userLoginKey is the key used to store the authenticated user's login in
// the request context. Using a custom type prevents collisions.
const userLoginKey = contextKey("userLogin")

// GetUserLoginFromContext retrieves the authenticated login from the Gin
// context. It returns the login and a boolean indicating if it was found.
func GetUserLoginFromContext(c *gin.Context) (string, bool) {
	loginVal, exists := c.Get(string(userLoginKey))
	if !exists {
		// check in the request context as well
		ctxVal := c.Request.Context().Value(userLoginKey)
		if ctxVal != nil {
			return ctxVal.(string), true
		}
		return "", false
	}

	login, ok := loginVal.(string)
	if !ok {
		return "", false
	}

	return login, true
}
