package planning

import "fmt"

// CategoryKey groups template activities for the per-category editing pages.
type CategoryKey string

const (
	CategoryConsultations CategoryKey = "consultations"
	CategoryBloc          CategoryKey = "bloc"
	CategoryService       CategoryKey = "service"
	CategoryGarde         CategoryKey = "garde"
	CategoryExploration   CategoryKey = "exploration"
)

type CategoryMeta struct {
	Key         CategoryKey `json:"key"`
	Label       string      `json:"label"`
	Description string      `json:"description"`
}

// Categories lists the five category cards in display order.
var Categories = []CategoryMeta{
	{
		Key:         CategoryConsultations,
		Label:       "Consultations",
		Description: "Consultations spécialisées, nouveaux malades, CS externes, CRM, annexes…",
	},
	{
		Key:         CategoryBloc,
		Label:       "Bloc opératoire",
		Description: "Bloc, 2ème/3ème salle, HDJ, petite chirurgie…",
	},
	{
		Key:         CategoryService,
		Label:       "Service",
		Description: "Visites, entrants, contre-visite, dossiers, cours, centralisation…",
	},
	{
		Key:         CategoryGarde,
		Label:       "Garde",
		Description: "Garde semaine et garde du weekend.",
	},
	{
		Key:         CategoryExploration,
		Label:       "Exploration",
		Description: "CV, OCT, Topographie, Laser, Interprétation…",
	},
}

// ActivityCategory assigns every template activity to exactly one category.
// The keys must match the Template spelling exactly; ValidateCatalogs
// enforces that at startup.
var ActivityCategory = map[string]CategoryKey{
	"Équipe visite":        CategoryService,
	"Équipe entrant":       CategoryService,
	"Équipe contre visite": CategoryService,
	"Cours des externes":   CategoryService,
	"Centralisation":       CategoryService,
	"Équipe dossier":       CategoryService,
	"Équipe HDJ":           CategoryBloc,

	"Équipe 2ème salle": CategoryBloc,
	"Équipe 3ème salle": CategoryBloc,
	"Petite chirurgie":  CategoryBloc,

	"CS infectieuse":             CategoryConsultations,
	"CS Pr Hidan":                CategoryConsultations,
	"CS Pr Rachid":               CategoryConsultations,
	"CS Pr Hammouch":             CategoryConsultations,
	"CS Pr Benhmidoune":          CategoryConsultations,
	"CS Pr Bentouhami":           CategoryConsultations,
	"CS Pr Mchachi":              CategoryConsultations,
	"CS Cornée":                  CategoryConsultations,
	"CS Réfraction":              CategoryConsultations,
	"CS rétinopathie diabétique": CategoryConsultations,
	"Strabologie":                CategoryConsultations,
	"Glaucome":                   CategoryConsultations,
	"Uvéite":                     CategoryConsultations,
	"Nouveaux malades":           CategoryConsultations,
	"CRM":                        CategoryConsultations,
	"Annexes":                    CategoryConsultations,

	"Équipe de garde":            CategoryGarde,
	"Équipe de garde du weekend": CategoryGarde,

	"Champs visuels (CV)": CategoryExploration,
	"OCT":                 CategoryExploration,
	"Topographie":         CategoryExploration,
	"Laser":               CategoryExploration,
	"Interprétation":      CategoryExploration,
	"Angiographie":        CategoryExploration,
}

// ConfigError reports a mismatch between the static catalogs. It only
// surfaces at startup through ValidateCatalogs; hitting one at runtime means
// the binary was started without validation.
type ConfigError struct {
	Activity string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("activity %q has no category", e.Activity)
}

// CategoryOf resolves an activity's category key.
func CategoryOf(activity string) (CategoryKey, error) {
	category, ok := ActivityCategory[activity]
	if !ok {
		return "", &ConfigError{Activity: activity}
	}
	return category, nil
}

// ValidCategory reports whether key names one of the five known categories.
func ValidCategory(key CategoryKey) bool {
	for _, meta := range Categories {
		if meta.Key == key {
			return true
		}
	}
	return false
}

// ValidateCatalogs checks that every activity in the Template has a category
// assignment. Run once at startup; a failure is fatal misconfiguration.
func ValidateCatalogs() error {
	for _, weekday := range Weekdays {
		for _, period := range PeriodOrder {
			for _, activity := range ActivitiesOf(weekday, period) {
				if _, err := CategoryOf(activity); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
