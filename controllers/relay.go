package controllers

import "github.com/gin-gonic/gin"

// forwardedCookie lit le header Cookie du navigateur. Vide = pas de session,
// on ne le transmet pas (jamais de cookie synthétique).
func forwardedCookie(c *gin.Context) string {
	return c.GetHeader("Cookie")
}

// relaySetCookies retransmet au navigateur chaque cookie posé par l'API
// externe, sans transformation.
func relaySetCookies(c *gin.Context, cookies []string) {
	for _, cookie := range cookies {
		c.Writer.Header().Add("Set-Cookie", cookie)
	}
}
