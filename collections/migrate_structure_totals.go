package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
)

// MigrateStructureTotalFlags marks legacy surveys that carry a non-zero
// stored structure total but predate the structure_total_set flag. A
// non-zero stored total could only have come from a deliberate edit, so
// those surveys keep it; surveys with a zero total stay unset and have
// their structure cost recomputed from entries. Safe to call on every
// startup -- returns early if nothing to migrate.
func MigrateStructureTotalFlags(app *pocketbase.PocketBase) error {
	surveysCol, err := app.FindCollectionByNameOrId("surveys")
	if err != nil {
		return fmt.Errorf("migrate: could not find surveys collection: %w", err)
	}

	legacy, err := app.FindRecordsByFilter(
		surveysCol,
		"structure_total != 0 && structure_total_set = false",
		"",
		0,
		0,
		nil,
	)
	if err != nil {
		return fmt.Errorf("migrate: could not query legacy surveys: %w", err)
	}

	if len(legacy) == 0 {
		return nil
	}

	log.Printf("migrate: found %d survey(s) with an unflagged structure total -- marking as set...\n", len(legacy))

	migrated := 0
	for _, survey := range legacy {
		survey.Set("structure_total_set", true)
		if err := app.Save(survey); err != nil {
			log.Printf("migrate: failed to flag survey %q (%s): %v\n", survey.GetString("site_name"), survey.Id, err)
			continue
		}
		migrated++
	}

	log.Printf("migrate: flagged %d survey(s).\n", migrated)
	return nil
}
