// Package taxonomy holds the static catalog of practice categories and
// specialty descriptions served by the public content endpoints.
package taxonomy

type Category struct {
	Slug        string   `json:"slug"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Specialties []string `json:"specialties"`
}

type Specialty struct {
	Name             string   `json:"name"`
	Category         string   `json:"category"`
	ShortDescription string   `json:"short_description"`
	FullDescription  string   `json:"full_description"`
	Indications      []string `json:"indications"`
	Methods          []string `json:"methods"`
}

var categories = []Category{
	{
		Slug:        "psychologie",
		Name:        "Psychologie & Psychothérapie",
		Description: "Thérapies mentales, émotionnelles, troubles anxieux, soutien psychologique",
		Specialties: []string{
			"Psychologue",
			"Psychologue Clinicien",
			"Psychopraticien",
			"Psychothérapeute",
			"Psychanalyste",
			"Neuropsychologue",
			"Thérapeute de couple",
			"Thérapeute familial",
		},
	},
	{
		Slug:        "hypnose",
		Name:        "Hypnose & Thérapies brèves",
		Description: "Interventions rapides, troubles ciblés, gestion du stress",
		Specialties: []string{
			"Hypnothérapeute",
			"Praticien en Hypnose",
			"Praticien EMDR",
			"Praticien EFT",
			"Praticien en Thérapies Brèves",
		},
	},
	{
		Slug:        "medecines-douces",
		Name:        "Médecines douces & Soins naturels",
		Description: "Approches naturelles, prévention, santé globale",
		Specialties: []string{
			"Naturopathe",
			"Phytothérapeute",
			"Aromathérapeute",
			"Micronutritionniste",
		},
	},
	{
		Slug:        "energetique",
		Name:        "Énergétique & Thérapies vibratoires",
		Description: "Soins par l'énergie, harmonisation, rééquilibrage",
		Specialties: []string{
			"Praticien Reiki",
			"Maître Reiki",
			"Bioénergéticien",
			"Magnétiseur",
		},
	},
}

var specialties = map[string]Specialty{
	"Psychologue": {
		Name:             "Psychologue",
		Category:         "psychologie",
		ShortDescription: "Professionnel diplômé spécialisé dans l'analyse du comportement humain et des émotions",
		FullDescription:  "Le psychologue est un professionnel diplômé d'un Master universitaire en psychologie. Il est formé à l'analyse du comportement humain, des émotions, des mécanismes psychiques et des stratégies d'adaptation. À travers des entretiens, tests et bilans psychologiques, il identifie les difficultés et accompagne la personne avec des outils adaptés pour améliorer sa santé mentale et sa qualité de vie.",
		Indications:      []string{"Anxiété", "Dépression", "Phobies", "Burn-out", "Troubles du comportement"},
		Methods:          []string{"Entretiens cliniques", "Tests psychologiques", "Bilans psychologiques", "Thérapies comportementales et cognitives"},
	},
	"Psychologue Clinicien": {
		Name:             "Psychologue Clinicien",
		Category:         "psychologie",
		ShortDescription: "Spécialiste de la souffrance psychique profonde, formé à la psychopathologie",
		FullDescription:  "Plus spécialisé, le psychologue clinicien travaille sur la souffrance psychique profonde. Formé à la psychopathologie, il intervient dans les troubles complexes : traumas, angoisses, dépression sévère, troubles de l'attachement, difficultés relationnelles.",
		Indications:      []string{"Traumas", "Angoisses", "Dépression sévère", "Troubles de l'attachement"},
		Methods:          []string{"Psychothérapie clinique", "Psychopathologie", "Cadre thérapeutique structuré"},
	},
	"Psychopraticien": {
		Name:             "Psychopraticien",
		Category:         "psychologie",
		ShortDescription: "Accompagne par des techniques de psychothérapie reconnues",
		FullDescription:  "Le psychopraticien accompagne les personnes à travers des techniques de psychothérapie reconnues (humaniste, analytique, gestalt, intégrative...). Il aide à comprendre les blocages émotionnels, les schémas répétitifs, les traumatismes et les conflits internes.",
		Indications:      []string{"Blocages émotionnels", "Schémas répétitifs", "Traumatismes", "Conflits internes"},
		Methods:          []string{"Approche humaniste", "Gestalt", "Thérapie analytique", "Thérapie intégrative"},
	},
	"Psychothérapeute": {
		Name:             "Psychothérapeute",
		Category:         "psychologie",
		ShortDescription: "Traitement des troubles émotionnels et comportementaux en profondeur",
		FullDescription:  "Professionnel du soin psychique, il utilise des méthodes validées scientifiquement (TCC, approche humaniste, systémie, analyse...). Son rôle est de traiter les troubles émotionnels, comportementaux ou relationnels en profondeur.",
		Indications:      []string{"Troubles émotionnels", "Troubles comportementaux", "Troubles relationnels"},
		Methods:          []string{"TCC", "Approche humaniste", "Systémie", "Analyse"},
	},
	"Hypnothérapeute": {
		Name:             "Hypnothérapeute",
		Category:         "hypnose",
		ShortDescription: "Utilise l'état hypnotique pour traiter troubles et dépendances",
		FullDescription:  "L'hypnothérapeute utilise l'état modifié de conscience pour accéder aux ressources inconscientes. Il accompagne l'arrêt du tabac, la gestion du poids, les phobies, le stress et les troubles du sommeil à travers des séances d'hypnose guidée.",
		Indications:      []string{"Arrêt du tabac", "Gestion du poids", "Phobies", "Stress", "Troubles du sommeil"},
		Methods:          []string{"Hypnose ericksonienne", "Hypnose classique", "Autohypnose"},
	},
	"Praticien EMDR": {
		Name:             "Praticien EMDR",
		Category:         "hypnose",
		ShortDescription: "Retraitement des traumatismes par mouvements oculaires",
		FullDescription:  "Le praticien EMDR utilise la désensibilisation et le retraitement par les mouvements oculaires pour traiter les syndromes post-traumatiques. La stimulation bilatérale permet au cerveau de retraiter les souvenirs douloureux.",
		Indications:      []string{"Stress post-traumatique", "Traumas", "Deuils", "Anxiété"},
		Methods:          []string{"Stimulation bilatérale", "Protocole EMDR standard"},
	},
	"Naturopathe": {
		Name:             "Naturopathe",
		Category:         "medecines-douces",
		ShortDescription: "Rééquilibre l'organisme par des moyens naturels",
		FullDescription:  "Le naturopathe établit un bilan de vitalité et propose un programme d'hygiène de vie personnalisé : alimentation, exercice, gestion du stress, plantes et techniques naturelles pour soutenir les capacités d'autorégulation de l'organisme.",
		Indications:      []string{"Fatigue chronique", "Troubles digestifs", "Stress", "Prévention santé"},
		Methods:          []string{"Bilan de vitalité", "Réglages alimentaires", "Phytothérapie", "Techniques respiratoires"},
	},
	"Praticien Reiki": {
		Name:             "Praticien Reiki",
		Category:         "energetique",
		ShortDescription: "Harmonisation énergétique par apposition des mains",
		FullDescription:  "Le praticien Reiki canalise l'énergie universelle par apposition des mains pour favoriser la détente profonde et relancer les capacités d'autoguérison. Une séance agit sur les plans physique, émotionnel et mental.",
		Indications:      []string{"Stress", "Troubles du sommeil", "Douleurs", "Accompagnement émotionnel"},
		Methods:          []string{"Apposition des mains", "Harmonisation des centres énergétiques"},
	},
}

// Categories returns the catalog in display order.
func Categories() []Category {
	return categories
}

func CategoryBySlug(slug string) (Category, bool) {
	for _, c := range categories {
		if c.Slug == slug {
			return c, true
		}
	}
	return Category{}, false
}

func SpecialtyByName(name string) (Specialty, bool) {
	s, ok := specialties[name]
	return s, ok
}
