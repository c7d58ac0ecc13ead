package metrics

import "github.com/prometheus/client_golang/prometheus"

func init() { register(languageResolutions, languageSaves) }

var languageResolutions = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "language_resolutions_total",
		Help: "Language preference resolutions by outcome.",
	},
	[]string{"source"}, // user | no_entry | not_found | store_error | no_user
)

var languageSaves = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "language_saves_total",
		Help: "Language preference saves by result.",
	},
	[]string{"result"}, // ok | invalid | no_user | error
)

func IncLanguageResolution(source string) {
	languageResolutions.WithLabelValues(norm(source)).Inc()
}

func IncLanguageSave(result string) {
	languageSaves.WithLabelValues(norm(result)).Inc()
}
