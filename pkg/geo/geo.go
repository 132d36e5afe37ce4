package geo

import (
	"math"
	"sort"
)

const earthRadiusMeters = 6371000

type Point struct {
	Lat float64
	Lng float64
}

// HaversineMeters возвращает расстояние по дуге большого круга между двумя точками.
func HaversineMeters(a, b Point) float64 {
	toRad := func(deg float64) float64 {
		return deg * math.Pi / 180
	}

	dLat := toRad(b.Lat - a.Lat)
	dLng := toRad(b.Lng - a.Lng)
	lat1 := toRad(a.Lat)
	lat2 := toRad(b.Lat)

	sinDLat := math.Sin(dLat / 2)
	sinDLng := math.Sin(dLng / 2)
	h := sinDLat*sinDLat + math.Cos(lat1)*math.Cos(lat2)*sinDLng*sinDLng
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMeters * c
}

type Candidate struct {
	ID       string
	Location Point
}

type Ranked struct {
	ID     string
	Meters float64
}

// RankByDistance сортирует кандидатов по возрастанию расстояния до origin.
// Сортировка стабильная: кандидаты на равном расстоянии сохраняют исходный порядок.
func RankByDistance(origin Point, candidates []Candidate) []Ranked {
	ranked := make([]Ranked, 0, len(candidates))
	for _, c := range candidates {
		ranked = append(ranked, Ranked{
			ID:     c.ID,
			Meters: HaversineMeters(c.Location, origin),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Meters < ranked[j].Meters
	})

	return ranked
}
