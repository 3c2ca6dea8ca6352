package news

const fallbackURL = "https://yesmagazine.it"

// ErrorFallback returns the placeholder list served when the upstream feed
// cannot be fetched or parsed. Each call returns a fresh slice.
func ErrorFallback() []Item {
	return []Item{
		{
			title:   "Ultime notizie in arrivo",
			excerpt: "Visita YesMagazine.it per tutte le ultime notizie...",
			url:     fallbackURL,
			date:    "Ora",
		},
	}
}

// EmptyFallback returns the placeholder list served when the feed was read
// successfully but no entry survived normalization. Each call returns a fresh slice.
func EmptyFallback() []Item {
	return []Item{
		{
			title:   "Grande successo per l'ultimo evento su Nexum Channel",
			excerpt: "Record di ascolti per la serata speciale trasmessa ieri...",
			url:     fallbackURL,
			date:    "2 ore fa",
		},
		{
			title:   "Nuovi programmi in arrivo sulla piattaforma HbbTV",
			excerpt: "Scopri le novità della programmazione autunnale...",
			url:     fallbackURL,
			date:    "5 ore fa",
		},
		{
			title:   "Italian Horse TV: intervista esclusiva",
			excerpt: "Il mondo dell'ippica raccontato dai protagonisti...",
			url:     fallbackURL,
			date:    "1 giorno fa",
		},
	}
}
