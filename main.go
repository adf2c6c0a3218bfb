package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wallof.love/configs"
	"wallof.love/configs/configsdatabase"
	"wallof.love/configs/configslog"
	"wallof.love/pkg/renderer"
	"wallof.love/pkg/sessionevents"
	"wallof.love/routes"
	"wallof.love/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs.LoadEnv()
	configslog.InitLogger()
	defer configslog.SyncLogger()

	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()

	engine := html.New("./views", ".html")
	engine.Reload(!configs.IsProduction())
	engine.AddFuncMap(renderer.TemplateFuncs())

	// multipart zarfı için dosya sınırının üzerine 1 MB pay bırakılır
	uploadLimit := services.NewStorageService().MaxBytes()
	app := fiber.New(fiber.Config{
		AppName:      "wallof.love",
		Views:        engine,
		BodyLimit:    int(uploadLimit) + 1<<20,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		ErrorHandler: errorHandler,
	})

	hub := sessionevents.NewHub(64)
	routes.SetupRoutes(app, hub)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	events, unsubscribe := hub.Subscribe()
	g.Go(func() error {
		defer unsubscribe()
		consumeSessionEvents(gctx, events, services.NewAuthService(nil))
		return nil
	})

	addr := ":" + configs.GetEnv("APP_PORT", "3000")
	g.Go(func() error {
		configslog.SLog.Infof("Sunucu %s adresinde dinleniyor", addr)
		if err := app.Listen(addr); err != nil {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		configslog.SLog.Info("Kapatma sinyali alındı, sunucu durduruluyor...")
		hub.Close()
		return app.ShutdownWithTimeout(shutdownTimeout)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		configslog.Log.Error("Sunucu hatayla kapandı", zap.Error(err))
		configslog.SyncLogger()
		os.Exit(1)
	}
	configslog.SLog.Info("Sunucu kapatıldı.")
}

// consumeSessionEvents oturum olaylarını loglar ve girişlerde son giriş zamanını yazar.
func consumeSessionEvents(ctx context.Context, events <-chan sessionevents.Event, auth services.IAuthService) {
	for {
		select {
		case <-ctx.Done():
			return
		case e, ok := <-events:
			if !ok {
				return
			}
			configslog.Log.Info("Oturum olayı",
				zap.String("kind", string(e.Kind)),
				zap.Uint("user_id", e.UserID),
				zap.Time("at", e.At),
			)
			if err := auth.RecordLogin(ctx, e); err != nil {
				configslog.Log.Warn("Son giriş zamanı yazılamadı", zap.Uint("user_id", e.UserID), zap.Error(err))
			}
		}
	}
}

// errorHandler handler'lardan dönen ve ele alınmamış hataları son kullanıcıya gösterir.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	if code >= fiber.StatusInternalServerError {
		configslog.Log.Error("İşlenmeyen hata", zap.String("path", c.Path()), zap.Error(err))
	}

	if c.Accepts("application/json", "text/html") == "application/json" {
		return c.Status(code).JSON(fiber.Map{"error": err.Error()})
	}
	view := "errors/500"
	switch code {
	case fiber.StatusNotFound:
		view = "errors/404"
	case fiber.StatusForbidden:
		view = "errors/403"
	}
	if renderErr := c.Status(code).Render(view, fiber.Map{"Title": "Hata", "Message": err.Error()}, "layouts/error_layout"); renderErr != nil {
		return c.Status(code).SendString(err.Error())
	}
	return nil
}
