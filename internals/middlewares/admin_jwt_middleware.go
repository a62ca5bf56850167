package middlewares

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"ewm_backend/internals/configs"
)

// AdminJWTMiddleware menjaga route /admin.
// Token HS256 dengan claim role=admin; tidak ada login flow di service ini,
// token diterbitkan di luar (ops tooling).
func AdminJWTMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		secret := configs.AdminJWTSecret
		if secret == "" {
			log.Println("[ERROR] ADMIN_JWT_SECRET kosong")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing admin JWT secret")
		}

		authHeader := c.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Missing bearer token")
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			log.Println("[WARNING] Token admin tidak valid:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid token")
		}

		role, _ := claims["role"].(string)
		if role != "admin" {
			return fiber.NewError(fiber.StatusForbidden, "Forbidden - Admin only")
		}

		c.Locals("admin_sub", claims["sub"])
		return c.Next()
	}
}
