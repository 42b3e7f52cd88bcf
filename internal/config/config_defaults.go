package config

import (
	"time"

	"github.com/spf13/viper"
)

// setDefaults registers every configuration key with its default value.
// Keeping them in one place makes the full configuration surface greppable.
func setDefaults(v *viper.Viper) {
	// Engine defaults
	v.SetDefault("engine.weights", map[string]float64{
		"structure":       1,
		"skills":          1,
		"action_verbs":    1,
		"quantification":  1,
		"readability":     1,
		"flow":            1,
		"employment_gaps": 1,
	})
	v.SetDefault("engine.bands.good", 80)
	v.SetDefault("engine.bands.warning", 50)

	v.SetDefault("engine.extractor.maxBytes", int64(50*1024*1024))
	v.SetDefault("engine.extractor.maxLines", 20000)
	v.SetDefault("engine.extractor.timeout", 10*time.Second)

	v.SetDefault("engine.skills.minCount", 5)
	v.SetDefault("engine.actionVerbs.criticalWeakRatio", 0.5)
	v.SetDefault("engine.actionVerbs.longBulletWords", 30)
	v.SetDefault("engine.quantification.minRatio", 0.3)
	v.SetDefault("engine.readability.maxSentenceLength", 25.0)
	v.SetDefault("engine.gaps.thresholdMonths", 6)
	v.SetDefault("engine.recommendations.maxItems", 10)

	v.SetDefault("engine.vocabulary.skillsFile", "")
	v.SetDefault("engine.vocabulary.actionVerbsFile", "")
	v.SetDefault("engine.vocabulary.weakOpenersFile", "")
	v.SetDefault("engine.vocabulary.sectionSynonymsFile", "")
	v.SetDefault("engine.vocabulary.watch", false)

	// Server defaults
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.readTimeout", 30*time.Second)
	v.SetDefault("server.writeTimeout", 60*time.Second)
	v.SetDefault("server.idleTimeout", 120*time.Second)

	// TLS defaults
	v.SetDefault("server.tls.mode", "disabled")
	v.SetDefault("server.tls.certFile", "")
	v.SetDefault("server.tls.keyFile", "")
	v.SetDefault("server.tls.minVersion", "1.2")

	// Rate limiting defaults
	v.SetDefault("server.rateLimit.enabled", true)
	v.SetDefault("server.rateLimit.requestsPerMin", 60)
	v.SetDefault("server.rateLimit.burstCapacity", 10)
	v.SetDefault("server.rateLimit.byIP", true)
	v.SetDefault("server.rateLimit.byAPIKey", true)
	v.SetDefault("server.rateLimit.window", time.Minute)

	// App defaults
	v.SetDefault("app.logLevel", "info")
	v.SetDefault("app.defaultFormat", "json")
	v.SetDefault("app.supportedFormats", []string{"json", "text", "markdown"})
	v.SetDefault("app.maxUploadSize", int64(50*1024*1024))

	// Observability defaults
	v.SetDefault("observability.enabled", true)
	v.SetDefault("observability.serviceName", "resumelens")
	v.SetDefault("observability.serviceVersion", "")
	v.SetDefault("observability.serviceInstance", "")
	v.SetDefault("observability.consoleOutput", false)
	v.SetDefault("observability.sampleRate", 1.0)

	v.SetDefault("observability.metrics.enabled", true)
	v.SetDefault("observability.metrics.collectionInterval", 30*time.Second)

	v.SetDefault("observability.customMetrics.analysis.enabled", true)
	v.SetDefault("observability.customMetrics.analysis.trackDuration", true)
	v.SetDefault("observability.customMetrics.analysis.trackScores", true)
	v.SetDefault("observability.customMetrics.businessMetrics.enabled", true)
	v.SetDefault("observability.customMetrics.infrastructure.enabled", true)
	v.SetDefault("observability.customMetrics.infrastructure.trackRateLimits", true)

	v.SetDefault("observability.console.enabled", false)
	v.SetDefault("observability.console.prettyPrint", true)

	v.SetDefault("observability.prometheus.enabled", false)
	v.SetDefault("observability.prometheus.endpoint", "/metrics")
	v.SetDefault("observability.prometheus.port", "9090")

	v.SetDefault("observability.otlp.enabled", false)
	v.SetDefault("observability.otlp.endpoint", "localhost:4318")
	v.SetDefault("observability.otlp.insecure", true)
	v.SetDefault("observability.otlp.headers", map[string]string{})
}
