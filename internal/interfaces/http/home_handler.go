package http

import "github.com/gofiber/fiber/v2"

const (
	homeSlogan  = "Effortless Wear"
	homeWebsite = "https://malaeffortlesswear.com/"
)

var homeImages = []string{"/static/foto1.jpg", "/static/foto2.jpg", "/static/foto3.jpg"}

type homePage struct {
	Page
	Slogan  string
	Images  []string
	Website string
}

// HomeHandler vista de inicio con la marca.
func HomeHandler(views *Views) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return views.Render(c, "home", homePage{
			Page:    views.page("Inicio", "inicio"),
			Slogan:  homeSlogan,
			Images:  homeImages,
			Website: homeWebsite,
		})
	}
}
