package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"kitchensurvey/services"
)

type groupResponse struct {
	Items    []string `json:"items"`
	Specials []string `json:"specials"`
	Region   struct {
		MinX int `json:"min_x"`
		MinY int `json:"min_y"`
		MaxX int `json:"max_x"`
		MaxY int `json:"max_y"`
		Side int `json:"side"`
	} `json:"region"`
}

// HandleSchematicGroups returns the connected groups of a survey's
// schematic with their square render regions, for the client-side
// canvas and the quote appendix.
func HandleSchematicGroups(app *pocketbase.PocketBase, threshold int) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		surveyID := e.Request.PathValue("id")
		if _, err := app.FindRecordById("surveys", surveyID); err != nil {
			return ErrorToast(e, http.StatusNotFound, "Survey not found")
		}

		placed := services.LoadSchematicItems(app, surveyID)
		specials := services.LoadSpecialItems(app, surveyID)

		groups := services.GroupConnectedItems(placed, specials, threshold)
		response := make([]groupResponse, 0, len(groups))
		for _, g := range groups {
			region := services.BoundingRegion(g)

			var gr groupResponse
			for _, item := range g.Placed {
				gr.Items = append(gr.Items, item.ID)
			}
			for _, sp := range g.Specials {
				gr.Specials = append(gr.Specials, sp.ID)
			}
			gr.Region.MinX = region.MinX
			gr.Region.MinY = region.MinY
			gr.Region.MaxX = region.MaxX
			gr.Region.MaxY = region.MaxY
			gr.Region.Side = region.Side()
			response = append(response, gr)
		}

		return e.JSON(http.StatusOK, response)
	}
}
