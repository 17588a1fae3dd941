package pattern

// Category groups templates by the kind of page they address
type Category string

const (
	CategoryVehicle Category = "vehicle"
	CategoryArticle Category = "article"
	CategoryBrand   Category = "brand"
)

// Valid reports whether c is one of the known categories
func (c Category) Valid() bool {
	switch c {
	case CategoryVehicle, CategoryArticle, CategoryBrand:
		return true
	}
	return false
}

// Template is a named URL path pattern with {placeholder} tokens
type Template struct {
	ID        string   `json:"id" yaml:"id"`
	Name      string   `json:"name" yaml:"name"`
	Pattern   string   `json:"pattern" yaml:"pattern"`
	Category  Category `json:"category" yaml:"category"`
	Variables []string `json:"variables" yaml:"variables"`
	Example   string   `json:"example" yaml:"example"`
}

// catalog is read-only after package init. Callers only ever get copies.
var catalog = []Template{
	{
		ID:        "vehicle-basic",
		Name:      "Veiculo basico",
		Pattern:   "/{vehicle_id}-{slug-do-carro}",
		Category:  CategoryVehicle,
		Variables: []string{"vehicle_id", "slug-do-carro"},
		Example:   "/123-fiat-argo-2024",
	},
	{
		ID:        "vehicle-brand",
		Name:      "Veiculo com marca",
		Pattern:   "/{slug-da-marca}/{vehicle_id}-{slug-do-carro}",
		Category:  CategoryVehicle,
		Variables: []string{"slug-da-marca", "vehicle_id", "slug-do-carro"},
		Example:   "/fiat/123-fiat-argo-2024",
	},
	{
		ID:        "vehicle-city",
		Name:      "Veiculo com cidade",
		Pattern:   "/{cidade-uf}/{vehicle_id}-{slug-do-carro}",
		Category:  CategoryVehicle,
		Variables: []string{"cidade-uf", "vehicle_id", "slug-do-carro"},
		Example:   "/sao-paulo-sp/123-fiat-argo-2024",
	},
	{
		ID:        "vehicle-brand-city",
		Name:      "Veiculo com marca e cidade",
		Pattern:   "/{slug-da-marca}/{cidade-uf}/{vehicle_id}-{slug-do-carro}",
		Category:  CategoryVehicle,
		Variables: []string{"slug-da-marca", "cidade-uf", "vehicle_id", "slug-do-carro"},
		Example:   "/fiat/sao-paulo-sp/123-fiat-argo-2024",
	},
	{
		ID:        "vehicle-neighborhood",
		Name:      "Veiculo com cidade e bairro",
		Pattern:   "/{cidade}/{bairro-uf}/{vehicle_id}-{slug-do-carro}",
		Category:  CategoryVehicle,
		Variables: []string{"cidade", "bairro-uf", "vehicle_id", "slug-do-carro"},
		Example:   "/sao-paulo/vila-madalena/123-fiat-argo-2024",
	},
	{
		ID:        "vehicle-brand-neighborhood",
		Name:      "Veiculo com marca, cidade e bairro",
		Pattern:   "/{slug-da-marca}/{cidade}/{bairro-uf}/{vehicle_id}-{slug-do-carro}",
		Category:  CategoryVehicle,
		Variables: []string{"slug-da-marca", "cidade", "bairro-uf", "vehicle_id", "slug-do-carro"},
		Example:   "/fiat/sao-paulo/vila-madalena/123-fiat-argo-2024",
	},
	{
		ID:        "buy-car",
		Name:      "Comprar carro",
		Pattern:   "/comprar-carro/{vehicle_id}-{slug-do-carro}",
		Category:  CategoryVehicle,
		Variables: []string{"vehicle_id", "slug-do-carro"},
		Example:   "/comprar-carro/123-fiat-argo-2024",
	},
	{
		ID:        "buy-car-city",
		Name:      "Comprar carro na cidade",
		Pattern:   "/comprar-carro/{cidade-uf}/{vehicle_id}-{slug-do-carro}",
		Category:  CategoryVehicle,
		Variables: []string{"cidade-uf", "vehicle_id", "slug-do-carro"},
		Example:   "/comprar-carro/sao-paulo-sp/123-fiat-argo-2024",
	},
	{
		ID:        "buy-used-car-city",
		Name:      "Comprar carro usado na cidade",
		Pattern:   "/comprar-carro-usado/{cidade-uf}/{vehicle_id}-{slug-do-carro}",
		Category:  CategoryVehicle,
		Variables: []string{"cidade-uf", "vehicle_id", "slug-do-carro"},
		Example:   "/comprar-carro-usado/sao-paulo-sp/123-fiat-argo-2024",
	},
	{
		ID:        "buy-car-neighborhood",
		Name:      "Comprar carro no bairro",
		Pattern:   "/comprar-carro/{cidade}/{bairro-uf}/{vehicle_id}-{slug-do-carro}",
		Category:  CategoryVehicle,
		Variables: []string{"cidade", "bairro-uf", "vehicle_id", "slug-do-carro"},
		Example:   "/comprar-carro/sao-paulo/vila-madalena/123-fiat-argo-2024",
	},
	{
		ID:        "buy-brand-city",
		Name:      "Comprar marca na cidade",
		Pattern:   "/comprar-{slug-da-marca}/{cidade-uf}/{vehicle_id}-{slug-do-carro}",
		Category:  CategoryVehicle,
		Variables: []string{"slug-da-marca", "cidade-uf", "vehicle_id", "slug-do-carro"},
		Example:   "/comprar-fiat/sao-paulo-sp/123-fiat-argo-2024",
	},
	{
		ID:        "article-basic",
		Name:      "Artigo basico",
		Pattern:   "/blog/{article_id}-{slug-do-artigo}",
		Category:  CategoryArticle,
		Variables: []string{"article_id", "slug-do-artigo"},
		Example:   "/blog/45-como-escolher-seu-primeiro-carro",
	},
	{
		ID:        "article-related",
		Name:      "Artigo relacionado",
		Pattern:   "/blog/{slug-relacionado}/{article_id}-{slug-do-artigo}",
		Category:  CategoryArticle,
		Variables: []string{"slug-relacionado", "article_id", "slug-do-artigo"},
		Example:   "/blog/fiat-argo/45-fiat-argo-vale-a-pena",
	},
	{
		ID:        "brand-basic",
		Name:      "Marca basica",
		Pattern:   "/marcas/{brand_id}-{slug-da-marca}",
		Category:  CategoryBrand,
		Variables: []string{"brand_id", "slug-da-marca"},
		Example:   "/marcas/7-fiat",
	},
	{
		ID:        "brand-city",
		Name:      "Marca na cidade",
		Pattern:   "/marcas/{slug-da-marca}/{cidade-uf}",
		Category:  CategoryBrand,
		Variables: []string{"slug-da-marca", "cidade-uf"},
		Example:   "/marcas/fiat/sao-paulo-sp",
	},
}

// Templates returns a copy of the whole catalog in declaration order
func Templates() []Template {
	out := make([]Template, len(catalog))
	for i, t := range catalog {
		out[i] = t.clone()
	}
	return out
}

// Count is the number of catalog entries
func Count() int {
	return len(catalog)
}

// Find looks a template up by id
func Find(id string) (Template, bool) {
	for _, t := range catalog {
		if t.ID == id {
			return t.clone(), true
		}
	}
	return Template{}, false
}

// ByCategory returns the templates of one category, in catalog order
func ByCategory(c Category) []Template {
	out := []Template{}
	for _, t := range catalog {
		if t.Category == c {
			out = append(out, t.clone())
		}
	}
	return out
}

func (t Template) clone() Template {
	t.Variables = append([]string(nil), t.Variables...)
	return t
}
