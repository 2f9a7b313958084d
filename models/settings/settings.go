package settings

// Settings are front-desk preferences kept in the local key-value store
// rather than the relational backend.
type Settings struct {
	CheckInTime  string `json:"check_in_time"`
	CheckOutTime string `json:"check_out_time"`
	Language     string `json:"language"`
}

// Defaults returns the out-of-the-box front desk settings.
func Defaults() Settings {
	return Settings{
		CheckInTime:  "15:00",
		CheckOutTime: "11:00",
		Language:     "English",
	}
}
