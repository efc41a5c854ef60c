package domain

// Display sentinels. Every field of a VehicleReportView always holds one of
// these or real decoded data — never an empty string.
const (
	SentinelUnknown   = "—"
	SentinelNotOnFile = "NOT ON FILE"
	SentinelLocked    = "LOCKED 🔒"
)

// VehicleReportView is the flat, display-ready shape of a decoded VIN report.
// Free fields come from the vPIC decode; premium fields are always locked
// because no paid data source is integrated.
type VehicleReportView struct {
	VIN          string `json:"vin"`
	Year         string `json:"year"`
	Make         string `json:"make"`
	Model        string `json:"model"`
	Trim         string `json:"trim"`
	DriveType    string `json:"driveType"`
	BrakeSystem  string `json:"brakeSystem"`
	Engine       string `json:"engine"`
	Manufactured string `json:"manufactured"`
	BodyStyle    string `json:"bodyStyle"`
	Tires        string `json:"tires"`
	Transmission string `json:"transmission"`
	Warranty     string `json:"warranty"`
	MSRP         string `json:"msrp"`
	Doors        string `json:"doors"`
	Seats        string `json:"seats"`
	FuelType     string `json:"fuelType"`
	Country      string `json:"country"`
	VehicleType  string `json:"vehicleType"`

	// Premium fields. Permanently locked in the current product.
	AccidentHistory  string `json:"accidentHistory"`
	TitleRecords     string `json:"titleRecords"`
	OdometerReading  string `json:"odometerReading"`
	SalesHistory     string `json:"salesHistory"`
	MarketValue      string `json:"marketValue"`
	RecallInfo       string `json:"recallInfo"`
	TheftRecords     string `json:"theftRecords"`
	InsuranceRecords string `json:"insuranceRecords"`
	PreviousOwners   string `json:"previousOwners"`
	ServiceHistory   string `json:"serviceHistory"`
}

// FallbackReportView returns a fully sentineled view for a VIN the decode
// service could not resolve. The UI always has something to render.
func FallbackReportView(vin string) *VehicleReportView {
	v := &VehicleReportView{
		VIN:          vin,
		Year:         SentinelUnknown,
		Make:         SentinelUnknown,
		Model:        SentinelUnknown,
		Trim:         SentinelUnknown,
		DriveType:    SentinelUnknown,
		BrakeSystem:  SentinelUnknown,
		Engine:       SentinelUnknown,
		Manufactured: SentinelUnknown,
		BodyStyle:    SentinelUnknown,
		Tires:        SentinelUnknown,
		Transmission: SentinelUnknown,
		Warranty:     SentinelNotOnFile,
		MSRP:         SentinelNotOnFile,
		Doors:        SentinelUnknown,
		Seats:        SentinelUnknown,
		FuelType:     SentinelUnknown,
		Country:      SentinelUnknown,
		VehicleType:  SentinelUnknown,
	}
	v.LockPremiumFields()
	return v
}

// LockPremiumFields sets every premium field to the locked sentinel. Applied
// to every view regardless of decode outcome.
func (v *VehicleReportView) LockPremiumFields() {
	v.AccidentHistory = SentinelLocked
	v.TitleRecords = SentinelLocked
	v.OdometerReading = SentinelLocked
	v.SalesHistory = SentinelLocked
	v.MarketValue = SentinelLocked
	v.RecallInfo = SentinelLocked
	v.TheftRecords = SentinelLocked
	v.InsuranceRecords = SentinelLocked
	v.PreviousOwners = SentinelLocked
	v.ServiceHistory = SentinelLocked
}

// PremiumFields returns the premium field values in display order.
func (v *VehicleReportView) PremiumFields() []string {
	return []string{
		v.AccidentHistory,
		v.TitleRecords,
		v.OdometerReading,
		v.SalesHistory,
		v.MarketValue,
		v.RecallInfo,
		v.TheftRecords,
		v.InsuranceRecords,
		v.PreviousOwners,
		v.ServiceHistory,
	}
}

// CheckCategory is one entry in the "scanning vehicle databases" list shown
// while a report loads. Purely cosmetic.
type CheckCategory struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// CheckCategories returns the fixed list the loading screen cycles through.
func CheckCategories() []CheckCategory {
	return []CheckCategory{
		{ID: 1, Name: "Accidents", Icon: "🚗", Color: "#FF6B6B"},
		{ID: 2, Name: "Values", Icon: "💰", Color: "#4ECDC4"},
		{ID: 3, Name: "Title Records", Icon: "📄", Color: "#45B7D1"},
		{ID: 4, Name: "Recalls", Icon: "⚠️", Color: "#F9C846"},
		{ID: 5, Name: "Problem Checks", Icon: "🔍", Color: "#96CEB4"},
		{ID: 6, Name: "Specs", Icon: "⚙️", Color: "#FF8E72"},
		{ID: 7, Name: "Sales History", Icon: "📈", Color: "#A593E0"},
		{ID: 8, Name: "Odometer", Icon: "📏", Color: "#5DADE2"},
		{ID: 9, Name: "Salvage Records", Icon: "🔧", Color: "#58D68D"},
	}
}
