// Package location builds the city and neighborhood path segments used by the
// URL templates.
//
// Brazilian cities often have a neighborhood with the same name (the "Centro"
// of a town is sometimes literally named after it). When the city and the
// neighborhood slugs collide, the neighborhood slug receives the state as a
// suffix so templates that use both segments stay distinct.
package location

import "vitrine-url-api/internal/slug"

// ResolveConflict returns the neighborhood slug, suffixed with the state slug
// when it equals the city slug.
func ResolveConflict(cityName, neighborhoodName, stateName string) string {
	citySlug := slug.Simple(cityName)
	neighborhoodSlug := slug.Simple(neighborhoodName)

	if citySlug == neighborhoodSlug {
		return neighborhoodSlug + "-" + slug.Simple(stateName)
	}
	return neighborhoodSlug
}

// CityUfSlug joins a city and a state code: ("Campinas", "SP") -> "campinas-sp"
func CityUfSlug(city, stateCode string) string {
	return slug.Simple(city) + "-" + slug.Simple(stateCode)
}

// NeighborhoodUfSlug is the neighborhood segment used by the {bairro-uf}
// placeholder
func NeighborhoodUfSlug(city, neighborhood, stateCode string) string {
	return ResolveConflict(city, neighborhood, stateCode)
}
