package generator

import (
	"strconv"

	"vitrine-url-api/internal/model"
	"vitrine-url-api/internal/slug"
)

// CanonicalURLs builds the short list of brand/model paths without going
// through the template catalog:
//
//	/{brand}/{model}-{year}
//	/{brand}/{model}-{year}/{city}-{state}            (city and state set)
//	/{brand}/{model}-{year}/{city}/{neighborhood}-{state} (neighborhood also set)
//
// The neighborhood segment is not passed through the collision resolver.
func CanonicalURLs(req model.URLGenerationRequest) []string {
	base := "/" + slug.Make(req.Brand) + "/" + slug.Make(req.Model) + "-" + strconv.Itoa(req.Year)
	urls := []string{base}

	if req.City == "" || req.State == "" {
		return urls
	}

	city := slug.Make(req.City)
	state := slug.Make(req.State)
	urls = append(urls, base+"/"+city+"-"+state)

	if req.Neighborhood != "" {
		urls = append(urls, base+"/"+city+"/"+slug.Make(req.Neighborhood)+"-"+state)
	}
	return urls
}
