package rest

import (
	"embed"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/view"
)

const (
	pageTemplate  = "page"
	errorTemplate = "error"
)

//go:embed templates/*.html
var templateFS embed.FS

// squareData - a square together with the game it posts its click to.
type squareData struct {
	GameID string
	Square view.SquareView
}

type errorPage struct {
	Status  int
	Message string
}

type templateRenderer struct {
	templates *template.Template
}

func newTemplateRenderer() *templateRenderer {
	funcs := template.FuncMap{
		"square": func(gameID string, square view.SquareView) squareData {
			return squareData{GameID: gameID, Square: square}
		},
	}

	return &templateRenderer{
		templates: template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")),
	}
}

func (that *templateRenderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	return that.templates.ExecuteTemplate(w, name, data)
}
