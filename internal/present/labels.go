package present

import "strings"

// Labels holds every user-visible string that depends on the locale.
type Labels struct {
	Locale string

	Title    string
	Subtitle string
	Footer   string
	HelpHint string
	Loading  string

	SearchPlaceholder string
	AllHouses         string
	NoHouse           string
	SortBy            string
	SortOptions       []string
	Showing           string // format: shown, total
	NoResults         string
	LoadFailed        string

	Prev string
	Next string

	Alive    string
	Deceased string
	Actor    string
	Species  string
	Details  string

	BasicInfo      string
	MagicalTraits  string
	AlternateNames string
	Gender         string
	Ancestry       string
	Born           string
	Status         string
	StatusAlive    string
	StatusDeceased string
	ActorFull      string
	Patronus       string
	Wand           string
	WandCore       string // format: core
	WandLength     string // format: length
	Student        string
	Staff          string
	Wizard         string
	Image          string
	Yes            string
	No             string
	Close          string

	Unknown     string
	UnknownWand string
}

var spanish = Labels{
	Locale:            "es",
	Title:             "El Mundo Mágico de Harry Potter",
	Subtitle:          "Explora los personajes del universo mágico y descubre sus secretos",
	Footer:            "El Mundo Mágico de Harry Potter - Todos los derechos mágicos reservados",
	HelpHint:          "ayuda · q salir",
	Loading:           "Cargando personajes...",
	SearchPlaceholder: "Buscar personaje...",
	AllHouses:         "Todas las casas",
	NoHouse:           "Sin casa",
	SortBy:            "Ordenar por:",
	SortOptions:       []string{"Nombre", "Casa", "Fecha de nacimiento"},
	Showing:           "Mostrando %d de %d personajes",
	NoResults:         "No se encontraron personajes",
	LoadFailed:        "No se pudo cargar el catálogo",
	Prev:              "Anterior",
	Next:              "Siguiente",
	Alive:             "VIVO",
	Deceased:          "FALLECIDO",
	Actor:             "Actor:",
	Species:           "Especie:",
	Details:           "Ver detalles",
	BasicInfo:         "Información Básica",
	MagicalTraits:     "Características Mágicas",
	AlternateNames:    "Nombres Alternativos",
	Gender:            "Género",
	Ancestry:          "Ascendencia",
	Born:              "Nacimiento",
	Status:            "Estado",
	StatusAlive:       "Vivo",
	StatusDeceased:    "Fallecido",
	ActorFull:         "Actor/Actriz",
	Patronus:          "Patronus",
	Wand:              "Varita",
	WandCore:          "núcleo de %s",
	WandLength:        "%s pulgadas",
	Student:           "Estudiante de Hogwarts",
	Staff:             "Personal de Hogwarts",
	Wizard:            "Mago",
	Image:             "Imagen",
	Yes:               "Sí",
	No:                "No",
	Close:             "cerrar",
	Unknown:           "Desconocido",
	UnknownWand:       "Desconocida",
}

var english = Labels{
	Locale:            "en",
	Title:             "The Magical World of Harry Potter",
	Subtitle:          "Explore the characters of the wizarding world and uncover their secrets",
	Footer:            "The Magical World of Harry Potter - All magical rights reserved",
	HelpHint:          "help · q quit",
	Loading:           "Loading characters...",
	SearchPlaceholder: "Search characters...",
	AllHouses:         "All houses",
	NoHouse:           "No house",
	SortBy:            "Sort by:",
	SortOptions:       []string{"Name", "House", "Date of birth"},
	Showing:           "Showing %d of %d characters",
	NoResults:         "No characters found",
	LoadFailed:        "The catalog could not be loaded",
	Prev:              "Previous",
	Next:              "Next",
	Alive:             "ALIVE",
	Deceased:          "DECEASED",
	Actor:             "Actor:",
	Species:           "Species:",
	Details:           "View details",
	BasicInfo:         "Basic Information",
	MagicalTraits:     "Magical Traits",
	AlternateNames:    "Alternate Names",
	Gender:            "Gender",
	Ancestry:          "Ancestry",
	Born:              "Born",
	Status:            "Status",
	StatusAlive:       "Alive",
	StatusDeceased:    "Deceased",
	ActorFull:         "Actor/Actress",
	Patronus:          "Patronus",
	Wand:              "Wand",
	WandCore:          "%s core",
	WandLength:        "%s inches",
	Student:           "Hogwarts student",
	Staff:             "Hogwarts staff",
	Wizard:            "Wizard",
	Image:             "Image",
	Yes:               "Yes",
	No:                "No",
	Close:             "close",
	Unknown:           "Unknown",
	UnknownWand:       "Unknown",
}

// LabelsFor returns the labels for locale. Anything other than "en" gets Spanish.
func LabelsFor(locale string) Labels {
	if strings.EqualFold(strings.TrimSpace(locale), "en") {
		return english
	}
	return spanish
}

// Locales lists the supported locale codes.
func Locales() []string {
	return []string{"es", "en"}
}
