package dto

import (
	"github.com/epi-dashboard/internal/domain"
	"github.com/epi-dashboard/internal/pkg/utils"
)

// FeatureCollection - GeoJSON (RFC 7946) коллекция точек для карты
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

type Feature struct {
	Type       string            `json:"type"`
	Properties FeatureProperties `json:"properties"`
	Geometry   PointGeometry     `json:"geometry"`
}

type FeatureProperties struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// PointGeometry - координаты в порядке [lon, lat]
type PointGeometry struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

// NewFeatureCollection строит GeoJSON из точек, точки с невалидными координатами пропускаются
func NewFeatureCollection(points []domain.GeoPoint) FeatureCollection {
	features := make([]Feature, 0, len(points))
	for _, p := range points {
		if !utils.ValidateCoordinates(p.Lat, p.Lon) {
			continue
		}
		features = append(features, Feature{
			Type:       "Feature",
			Properties: FeatureProperties{Name: p.Name, Value: p.Value},
			Geometry: PointGeometry{
				Type:        "Point",
				Coordinates: [2]float64{p.Lon, p.Lat},
			},
		})
	}
	return FeatureCollection{
		Type:     "FeatureCollection",
		Features: features,
	}
}
