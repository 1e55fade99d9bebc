package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/vasilii314/kennel/store"
)

const shutdownTimeout = 5 * time.Second

// Api serves the dog catalog and the post log over HTTP.
// Stores are owned by the caller and injected here.
type Api struct {
	Address string
	Port    int
	Dogs    store.DogStore
	Posts   store.PostStore
	Router  *chi.Mux
	logger  *zap.Logger
}

func New(address string, port int, dogs store.DogStore, posts store.PostStore, logger *zap.Logger) *Api {
	a := &Api{
		Address: address,
		Port:    port,
		Dogs:    dogs,
		Posts:   posts,
		logger:  logger.Named("api.Api"),
	}
	a.initRouter()
	return a
}

func (a *Api) initRouter() {
	a.Router = chi.NewRouter()
	a.Router.Use(a.logRequests)
	a.Router.Use(middleware.Recoverer)
	a.Router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Not Found")
	})
	a.Router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})
	a.Router.Get("/", a.RootHandler)
	a.Router.Post("/post", a.CreatePostHandler)
	a.Router.Route("/dog", func(r chi.Router) {
		r.Get("/", a.ListDogsHandler)
		r.Post("/", a.CreateDogHandler)
		r.Get("/{pk}", a.GetDogHandler)
		r.Patch("/{pk}", a.UpdateDogHandler)
	})
}

// Start listens on Address:Port until ctx is cancelled,
// then shuts the server down gracefully.
func (a *Api) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", a.Address, a.Port),
		Handler:           a.Router,
		ReadHeaderTimeout: 5 * time.Second,
		ErrorLog:          zap.NewStdLog(a.logger),
	}
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("listening", zap.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		a.logger.Info("shutting down", zap.String("addr", srv.Addr))
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
