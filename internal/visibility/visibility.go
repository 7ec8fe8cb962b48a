package visibility

import (
	"time"
)

// Collection holds one settings document per client, keyed by client id.
const Collection = "visibilitySettings"

// Settings decide which dashboard sections a client sees. Only the client's coach
// changes them; a client without stored settings sees everything.
type Settings struct {
	ClientID           string    `json:"clientId"`
	ShowWeeklyGoals    bool      `json:"showWeeklyGoals"`
	ShowProgressGraph  bool      `json:"showProgressGraph"`
	ShowMealPlans      bool      `json:"showMealPlans"`
	ShowTrainingPDF    bool      `json:"showTrainingPdf"`
	ShowDailyCheckins  bool      `json:"showDailyCheckins"`
	ShowWeeklyCheckins bool      `json:"showWeeklyCheckins"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

func Defaults(clientID string) Settings {
	return Settings{
		ClientID:           clientID,
		ShowWeeklyGoals:    true,
		ShowProgressGraph:  true,
		ShowMealPlans:      true,
		ShowTrainingPDF:    true,
		ShowDailyCheckins:  true,
		ShowWeeklyCheckins: true,
	}
}
