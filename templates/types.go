// Package templates holds the templ components and view-model types for
// the survey UI.
package templates

// ActiveSurvey identifies the survey the user is currently editing,
// resolved from the active_survey cookie.
type ActiveSurvey struct {
	ID       string
	SiteName string
}

// SurveySelectorItem is one row of the header's survey switcher.
type SurveySelectorItem struct {
	ID       string
	SiteName string
	IsActive bool
}

// HeaderData feeds the shared page header.
type HeaderData struct {
	ActiveSurvey *ActiveSurvey
	Surveys      []SurveySelectorItem
}

// SurveyListItem is one row of the survey index page.
type SurveyListItem struct {
	ID              string
	SiteName        string
	ReferenceNumber string
	ClientName      string
	Status          string
	GrandTotal      string
}

// SurveyListData feeds the survey index page.
type SurveyListData struct {
	Surveys []SurveyListItem
}

// SurveyFormData feeds the create/edit survey form.
type SurveyFormData struct {
	ID              string
	SiteName        string
	ReferenceNumber string
	ClientName      string
	Status          string

	ParkingCost            string
	PostServiceReport      string
	PostServiceReportPrice string
	ModifierPercent        string
	AirPrice               string
	FanPartsPrice          string
	AirInExTotal           string
	GreaseTotal            string
	StructureTotal         string
	StructureTotalSet      bool

	StatusOptions            []string
	PostServiceReportOptions []string

	Errors map[string]string
}

// TotalLine is one rendered row of the totals fragment.
type TotalLine struct {
	Category string
	Details  string
	Amount   string
}

// TotalsData feeds the live totals fragment.
type TotalsData struct {
	Lines           []TotalLine
	Subtotal        string
	ModifierPercent string
	Adjustment      string
	GrandTotal      string
	HasModifier     bool
}
