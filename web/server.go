package web

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/unrolled/render"

	"github.com/jorgelillo7/biwenger-tools/controller"
)

//go:embed templates
var templates embed.FS

type Server struct {
	server *http.Server
}

// AdminCreds protects the admin routes with HTTP basic auth.
type AdminCreds struct {
	User     string
	Password string
}

func NewServer(port int, ctrl controller.C, admin AdminCreds) (*Server, error) {
	render := newRender()
	router := getRouter(ctrl, render, admin)

	s := &Server{
		server: &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: router,
		},
	}
	return s, nil
}

func (s *Server) ListenAndServe(shutdown chan bool, wg *sync.WaitGroup) {
	go func() {
		defer wg.Done()

		// Wait for the shutdown signal and safely close the server.
		<-shutdown

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.server.Shutdown(ctx); err != nil {
			log.Fatalf("fatal error shutting down server: %v", err)
		}
	}()

	log.Printf("web server is listening on %s", s.server.Addr)
	err := s.server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		log.Fatalf("fatal error with server: %v", err)
	}
}

func newRender() *render.Render {
	return render.New(render.Options{
		Directory: "templates",
		Layout:    "layout",
		FileSystem: &render.EmbedFileSystem{
			FS: templates,
		},
		Funcs: []template.FuncMap{
			{
				"lastSync": lastSyncFormatter,
				"snippet":  snippetFormatter,
			},
		},
	})
}

func lastSyncFormatter(t time.Time) string {
	if t.IsZero() {
		return "nunca"
	}
	return t.Format("02-01-2006 15:04:05")
}

// snippetFormatter trims long message bodies for the table view.
func snippetFormatter(s string) string {
	const max = 300
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "…"
}
