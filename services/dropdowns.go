package services

// GradeOptions is the set of catalogue price tiers.
var GradeOptions = []string{"A", "B", "C", "D", "E"}

// CalculationTypes are the pricing formula families a catalogue item
// can carry. The empty value means direct price lookup.
var CalculationTypes = []string{"", "area", "volume", "linear", "fixed"}

// StructureTypeOptions are the surface types a structure entry row can
// survey.
var StructureTypeOptions = []string{
	"Ceiling",
	"Wall",
	"Floor",
}

// AccessDoorTypeOptions are the door styles offered when an access
// door placed on the schematic needs a product selection.
var AccessDoorTypeOptions = []string{
	"Hinged",
	"Sliding",
	"Removable Panel",
	"Grease Tight",
}

// SchematicItemTypes distinguishes ordinary placed pieces from paired
// connectors and panels.
var SchematicItemTypes = []string{"piece", "connectors", "panel"}

// PostServiceReportOptions is the literal toggle stored on a survey.
// Only "Yes" includes the report fee in the quote.
var PostServiceReportOptions = []string{"No", "Yes"}
