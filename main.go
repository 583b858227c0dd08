package main

import (
	"log"
	"net/http"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"kitchensurvey/collections"
	"kitchensurvey/config"
	"kitchensurvey/handlers"
	"kitchensurvey/services"
)

func main() {
	app := pocketbase.New()
	cfg := config.Load()

	company := services.CompanyInfo{
		Name:    cfg.CompanyName,
		Address: cfg.CompanyAddress,
		Email:   cfg.CompanyEmail,
		Phone:   cfg.CompanyPhone,
	}

	// Create collections, seed the catalogue and run data migrations on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		collections.Seed(app)
		if err := collections.MigrateStructureTotalFlags(app); err != nil {
			log.Printf("Warning: structure total migration failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// Serve static files from ./static
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))

		// Apply active survey middleware globally
		se.Router.BindFunc(handlers.ActiveSurveyMiddleware(app))

		// ── Survey CRUD ──────────────────────────────────────────
		se.Router.GET("/surveys", handlers.HandleSurveyList(app))
		se.Router.GET("/surveys/create", handlers.HandleSurveyCreate(app))
		se.Router.POST("/surveys", handlers.HandleSurveySave(app, cfg.DefaultModifierPercent))
		se.Router.GET("/surveys/edit/{id}", handlers.HandleSurveyEdit(app))
		se.Router.POST("/surveys/edit/{id}", handlers.HandleSurveyUpdate(app))
		se.Router.DELETE("/surveys/{id}", handlers.HandleSurveyDelete(app))
		se.Router.POST("/surveys/switch/{id}", handlers.HandleSurveySwitch(app))

		// Totals fragment, re-rendered on every totals-changed event
		se.Router.GET("/surveys/{id}/totals", handlers.HandleSurveyTotals(app))

		// ── Survey entries ───────────────────────────────────────
		se.Router.POST("/surveys/{id}/structure-entries", handlers.HandleStructureEntryCreate(app))
		se.Router.DELETE("/structure-entries/{entryId}", handlers.HandleStructureEntryDelete(app))

		se.Router.POST("/surveys/{id}/equipment-entries", handlers.HandleEquipmentEntryCreate(app))
		se.Router.DELETE("/equipment-entries/{entryId}", handlers.HandleEquipmentEntryDelete(app))

		se.Router.POST("/surveys/{id}/canopy-entries", handlers.HandleCanopyEntryCreate(app))
		se.Router.DELETE("/canopy-entries/{entryId}", handlers.HandleCanopyEntryDelete(app))

		se.Router.POST("/surveys/{id}/specialist-entries", handlers.HandleSpecialistEntryCreate(app))
		se.Router.DELETE("/specialist-entries/{entryId}", handlers.HandleSpecialistEntryDelete(app))

		// Grade button cycling
		se.Router.POST("/grade-cycle", handlers.HandleGradeCycle(app))

		// ── Schematic ────────────────────────────────────────────
		se.Router.POST("/surveys/{id}/schematic", handlers.HandleSchematicPlace(app))
		se.Router.PATCH("/schematic/{itemId}", handlers.HandleSchematicPatch(app))
		se.Router.DELETE("/schematic/{itemId}", handlers.HandleSchematicDelete(app))
		se.Router.GET("/surveys/{id}/schematic/groups", handlers.HandleSchematicGroups(app, cfg.GroupingThreshold))

		se.Router.POST("/surveys/{id}/special-items", handlers.HandleSpecialItemCreate(app))
		se.Router.DELETE("/special-items/{entryId}", handlers.HandleSpecialItemDelete(app))

		// ── Schematic item selections ────────────────────────────
		se.Router.POST("/surveys/{id}/access-doors", handlers.HandleAccessDoorSave(app))
		se.Router.DELETE("/access-doors/{entryId}", handlers.HandleAccessDoorDelete(app))

		se.Router.POST("/surveys/{id}/flexi-ducts", handlers.HandleFlexiDuctSave(app))
		se.Router.DELETE("/flexi-ducts/{entryId}", handlers.HandleFlexiDuctDelete(app))

		// ── Quote export ─────────────────────────────────────────
		se.Router.GET("/surveys/{id}/quote.pdf", handlers.HandleQuotePDF(app, company))
		se.Router.GET("/surveys/{id}/quote.xlsx", handlers.HandleQuoteExcel(app, company))

		// ── Price catalogue import ───────────────────────────────
		se.Router.GET("/catalogue/import", handlers.HandleCatalogueImportPage(app))
		se.Router.POST("/catalogue/import", handlers.HandleCatalogueUpload(app))
		se.Router.GET("/catalogue/import/template", handlers.HandleCatalogueTemplate(app))
		se.Router.GET("/catalogue/import/errors", handlers.HandleCatalogueErrorReport(app))

		// Redirect home to the survey list
		se.Router.GET("/", func(e *core.RequestEvent) error {
			return e.Redirect(http.StatusFound, "/surveys")
		})

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
