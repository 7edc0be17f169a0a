package openweathermap

// OneCallAPIResponse is the body of a One Call 3.0 request with hourly data excluded.
// Readings are pointers so that fields missing from the payload stay distinguishable from zero.
type OneCallAPIResponse struct {
	Lat            float64             `json:"lat"`
	Lon            float64             `json:"lon"`
	Timezone       string              `json:"timezone"`
	TimezoneOffset int                 `json:"timezone_offset"`
	Current        *CurrentAPIResponse `json:"current"`
	Daily          []DailyAPIResponse  `json:"daily"`
}

type CurrentAPIResponse struct {
	Dt        int64       `json:"dt"`
	Temp      *float64    `json:"temp"`
	FeelsLike *float64    `json:"feels_like"`
	Pressure  *float64    `json:"pressure"`
	Humidity  *float64    `json:"humidity"`
	WindSpeed *float64    `json:"wind_speed"`
	WindDeg   *float64    `json:"wind_deg"`
	Weather   []Condition `json:"weather"`
}

type DailyAPIResponse struct {
	Dt        *int64      `json:"dt"`
	Sunrise   int64       `json:"sunrise"`
	Sunset    int64       `json:"sunset"`
	Summary   string      `json:"summary"`
	Temp      *DailyTemp  `json:"temp"`
	Pressure  *float64    `json:"pressure"`
	Humidity  *float64    `json:"humidity"`
	WindSpeed *float64    `json:"wind_speed"`
	Pop       *float64    `json:"pop"`
	Weather   []Condition `json:"weather"`
}

type DailyTemp struct {
	Day   *float64 `json:"day"`
	Min   *float64 `json:"min"`
	Max   *float64 `json:"max"`
	Night *float64 `json:"night"`
	Eve   *float64 `json:"eve"`
	Morn  *float64 `json:"morn"`
}

// Condition is one entry of a "weather" array. Only the first entry is displayed.
type Condition struct {
	Id          int     `json:"id"`
	Main        string  `json:"main"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
}

// PrimaryCondition returns the first condition, or nil when the array is empty.
func PrimaryCondition(conditions []Condition) *Condition {
	if len(conditions) == 0 {
		return nil
	}
	return &conditions[0]
}
