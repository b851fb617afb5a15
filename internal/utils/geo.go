package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
	"github.com/piresc/festshare/internal/pkg/models"
)

const (
	// EarthRadiusMeters is the mean Earth radius used by the haversine formula
	EarthRadiusMeters = 6371008.8

	// QuantizeDigits is the number of decimal degrees kept by Quantize (~11 m grid)
	QuantizeDigits = 4

	// CellPrecision is the geohash length used for cell keys (~150 m cells)
	CellPrecision = 7
)

// HaversineMeters calculates the great-circle distance between two coordinates in meters
func HaversineMeters(lat1, lng1, lat2, lng2 float64) float64 {
	phi1 := lat1 * math.Pi / 180.0
	phi2 := lat2 * math.Pi / 180.0
	dPhi := (lat2 - lat1) * math.Pi / 180.0
	dLambda := (lng2 - lng1) * math.Pi / 180.0

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)

	// Rounding can push a a hair outside [0,1] for identical or antipodal points
	a = math.Max(0, math.Min(1, a))

	return EarthRadiusMeters * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// Distance returns the distance in meters between two positions after quantizing both,
// so two points in the same grid bucket are exactly zero apart.
func Distance(a, b models.Position) float64 {
	qa, qb := Quantize(a), Quantize(b)
	if qa.Latitude == qb.Latitude && qa.Longitude == qb.Longitude {
		return 0
	}
	return HaversineMeters(qa.Latitude, qa.Longitude, qb.Latitude, qb.Longitude)
}

// Quantize rounds a position to QuantizeDigits decimal degrees
func Quantize(p models.Position) models.Position {
	return QuantizeWithPrecision(p, QuantizeDigits)
}

// QuantizeWithPrecision rounds latitude and longitude to the given number of decimal digits
func QuantizeWithPrecision(p models.Position, digits int) models.Position {
	scale := math.Pow(10, float64(digits))
	p.Latitude = roundTo(p.Latitude, scale)
	p.Longitude = roundTo(p.Longitude, scale)
	return p
}

func roundTo(v, scale float64) float64 {
	r := math.Round(v*scale) / scale
	if r == 0 {
		// normalise -0 so quantized keys compare and print identically
		return 0
	}
	return r
}

// QuantizeRadius rounds a radius to the nearest meter
func QuantizeRadius(r float64) int {
	return int(math.Round(r))
}

// SamePosition reports whether two positions fall into the same quantization bucket
func SamePosition(a, b models.Position) bool {
	qa, qb := Quantize(a), Quantize(b)
	return qa.Latitude == qb.Latitude && qa.Longitude == qb.Longitude
}

// CellKey returns a stable geohash key for the quantized position
func CellKey(p models.Position) string {
	q := Quantize(p)
	return geohash.EncodeWithPrecision(q.Latitude, q.Longitude, CellPrecision)
}

// ValidateCoordinates checks latitude and longitude ranges
func ValidateCoordinates(lat, lng float64) error {
	if math.IsNaN(lat) || math.IsNaN(lng) {
		return models.ErrInvalidPosition
	}
	if lat < -90 || lat > 90 {
		return models.ErrInvalidPosition
	}
	if lng < -180 || lng > 180 {
		return models.ErrInvalidPosition
	}
	return nil
}
