package catalog

const streamOrigin = "https://64b16f23efbee.streamlock.net:443"

// defaultDocument is the compiled-in line-up used when no catalog file is configured.
var defaultDocument = document{
	DefaultChannel: "nexum-channel",
	Channels: []channelDoc{
		{ID: "nexum-channel", Name: "Nexum Channel", Description: "Canale Principale", Live: true, Premium: true,
			StreamURL: streamOrigin + "/nexumchannel/nexumchannel/playlist.m3u8"},
		{ID: "prime-event", Name: "Prime Event", Description: "Grandi Spettacoli", Live: true, Premium: true,
			StreamURL: streamOrigin + "/primeevent/primeevent/playlist.m3u8"},
		{ID: "xcapital", Name: "XCapital", Description: "Finanza e Mercati", Live: true,
			StreamURL: streamOrigin + "/xcapital/xcapital/playlist.m3u8"},
		{ID: "italian-horse", Name: "Italian Horse TV", Description: "Passione Ippica", Live: true,
			StreamURL: streamOrigin + "/italianhorsetv/italianhorsetv/playlist.m3u8"},
		{ID: "salute24", Name: "Salute 24", Description: "Benessere Oggi", Live: true,
			StreamURL: streamOrigin + "/salute24/salute24/playlist.m3u8"},
		{ID: "controradio", Name: "Controradio", Description: "Radio e Musica", Live: true,
			StreamURL: streamOrigin + "/controradio/controradio/playlist.m3u8"},
	},
	Sponsors: []sponsorDoc{
		{ID: "1", Name: "Condoposta", Logo: "/sponsors/CONDOPOSTA.svg", Link: "https://www.condoposta.it/", Accent: "from-blue-600/30 to-cyan-600/30"},
		{ID: "2", Name: "Gallelli", Logo: "/sponsors/GALLELLI.svg", Link: "http://www.gallelli.eu/", Accent: "from-purple-600/30 to-pink-600/30"},
		{ID: "3", Name: "Pewex", Logo: "/sponsors/PEWEX.svg", Link: "https://www.pewex-supermercati.it/", Accent: "from-green-600/30 to-emerald-600/30"},
		{ID: "4", Name: "Robnik", Logo: "/sponsors/ROBNIK.svg", Link: "https://www.robnikjbprotection.it/", Accent: "from-orange-600/30 to-red-600/30"},
	},
	Ticker: []string{
		"🔴 LIVE: Grande evento su Prime Event alle 21:00",
		"📰 Nuova programmazione autunnale su Nexum Channel",
		"🏆 Italian Horse TV: Risultati gare del weekend",
		"💰 XCapital: Analisi mercati finanziari in tempo reale",
		"💊 Salute 24: Speciale benessere e prevenzione",
		"🎵 Controradio: Le migliori hit del momento",
	},
}

// Default returns the compiled-in catalog.
func Default() (*Catalog, error) {
	return defaultDocument.build()
}
