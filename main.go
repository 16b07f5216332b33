package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"go.uber.org/zap"

	"kartichka.link/configs"
	"kartichka.link/configs/configsdatabase"
	"kartichka.link/configs/configslog"
	"kartichka.link/handlers"
	"kartichka.link/pkg/wizard"
	"kartichka.link/repositories"
	"kartichka.link/routes"
	"kartichka.link/services"
)

func main() {
	configslog.InitLogger()
	defer configslog.SyncLogger()

	cfg := configs.LoadConfig()

	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()
	db := configsdatabase.GetDB()

	// Engine-ът рендерира тялото на известяващото писмо.
	viewEngine := html.New("./views", ".html")
	if err := viewEngine.Load(); err != nil {
		configslog.Log.Fatal("View шаблоните не могат да бъдат заредени", zap.Error(err))
	}

	storageService, err := services.NewStorageService(cfg)
	if err != nil {
		configslog.Log.Fatal("Обектното хранилище не е достъпно", zap.Error(err))
	}
	mailService := services.NewMailService(cfg, viewEngine)

	cardRepo := repositories.NewCardRepository(db)
	templateRepo := repositories.NewTemplateRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)

	cardService := services.NewCardService(cardRepo, storageService, mailService)
	templateService := services.NewTemplateService(templateRepo, categoryRepo)

	wizardStore := wizard.NewStore(configs.SetupSession())

	app := fiber.New(fiber.Config{
		AppName: "kartichka.link",
		Views:   viewEngine,
	})

	routes.SetupRoutes(app, routes.Handlers{
		Card:    handlers.NewCardHandler(cardService, templateService, wizardStore),
		Wizard:  handlers.NewWizardHandler(wizardStore),
		Consent: handlers.NewCookieConsentHandler(),
	})

	configslog.SLog.Infof("Сървърът слуша на %s", cfg.ListenAddr)
	if err := app.Listen(cfg.ListenAddr); err != nil {
		configslog.Log.Fatal("Сървърът спря с грешка", zap.Error(err))
	}
}
