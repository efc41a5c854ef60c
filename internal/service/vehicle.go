package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/autoreport/backend/internal/domain"
	"github.com/autoreport/backend/pkg/vpic"
)

// VehicleService shapes vPIC decode results into display-ready report views.
type VehicleService struct {
	decoder vpic.Decoder
}

// NewVehicleService creates a new VehicleService.
func NewVehicleService(decoder vpic.Decoder) *VehicleService {
	return &VehicleService{decoder: decoder}
}

// BuildReportView issues one decode call for the given VIN and maps the
// result into a VehicleReportView. A failed or empty lookup degrades to a
// fully sentineled fallback view — never an error; the UI must always have
// something to render.
func (s *VehicleService) BuildReportView(ctx context.Context, vin string) *domain.VehicleReportView {
	rec, err := s.decoder.Decode(ctx, vin)
	if err != nil {
		log.Printf("vehicle lookup degraded for %s: %v", vin, err)
		return domain.FallbackReportView(vin)
	}

	v := &domain.VehicleReportView{
		VIN:          vin,
		Year:         displayValue(rec.ModelYear),
		Make:         displayValue(rec.Make),
		Model:        displayValue(rec.Model),
		Trim:         displayValue(rec.Trim),
		DriveType:    displayValue(rec.DriveType),
		BrakeSystem:  displayValue(rec.BrakeSystemType),
		Engine:       engineDescription(rec),
		Manufactured: displayValue(rec.PlantCountry),
		BodyStyle:    displayValue(rec.BodyClass),
		Tires:        displayValue(firstOf(rec.TireSize, rec.WheelSizeFront)),
		Transmission: displayValue(firstOf(rec.TransmissionStyle, rec.TransmissionDescriptor)),
		Warranty:     domain.SentinelNotOnFile,
		MSRP:         domain.SentinelNotOnFile,
		Doors:        displayValue(rec.Doors),
		Seats:        displayValue(rec.Seats),
		FuelType:     displayValue(rec.FuelTypePrimary),
		Country:      displayValue(rec.PlantCountry),
		VehicleType:  displayValue(rec.VehicleType),
	}
	v.LockPremiumFields()
	return v
}

// displayValue substitutes the unknown sentinel for values vPIC uses to
// mean "no data".
func displayValue(v string) string {
	v = strings.TrimSpace(v)
	if v == "" || strings.EqualFold(v, "NULL") || strings.EqualFold(v, "Not Applicable") {
		return domain.SentinelUnknown
	}
	return v
}

// engineDescription concatenates displacement, cylinder count and engine
// model into one line, e.g. "2.0L 4 Cyl 204PT".
func engineDescription(rec *vpic.Record) string {
	var parts []string
	if d := strings.TrimSpace(rec.DisplacementL); d != "" && !strings.EqualFold(d, "NULL") {
		parts = append(parts, d+"L")
	}
	if c := strings.TrimSpace(rec.EngineCylinders); c != "" && !strings.EqualFold(c, "NULL") {
		parts = append(parts, fmt.Sprintf("%s Cyl", c))
	}
	if m := strings.TrimSpace(rec.EngineModel); m != "" && !strings.EqualFold(m, "NULL") {
		parts = append(parts, m)
	}
	if len(parts) == 0 {
		return domain.SentinelUnknown
	}
	return strings.Join(parts, " ")
}

func firstOf(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
