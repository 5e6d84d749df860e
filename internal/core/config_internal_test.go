package core

import (
	"testing"

	"github.com/charmbracelet/log"
	"github.com/onsi/gomega"
)

func TestLoggerFromEnv(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		value string
		level log.Level
	}{
		{value: "", level: log.InfoLevel},
		{value: "debug", level: log.DebugLevel},
		{value: "warn", level: log.WarnLevel},
		{value: "nonsense", level: log.InfoLevel},
	} {
		t.Run(tc.value, func(t *testing.T) {
			t.Parallel()
			g := gomega.NewWithT(t)

			logger := loggerFromEnv(func(key string) string {
				g.Expect(key).To(gomega.Equal(LogEnvVar))

				return tc.value
			})

			g.Expect(logger.GetLevel()).To(gomega.Equal(tc.level))
		})
	}
}

func TestNewConfig_DefaultsAndOptions(t *testing.T) {
	t.Parallel()
	g := gomega.NewWithT(t)

	cfg := newConfig(nil)
	g.Expect(cfg.logger).NotTo(gomega.BeNil())
	g.Expect(cfg.policy).To(gomega.BeNil())
	g.Expect(cfg.name).To(gomega.BeEmpty())

	policy := NewLenientPolicy()
	cfg = newConfig([]Option{WithName("send"), WithPolicy(policy)})
	g.Expect(cfg.name).To(gomega.Equal("send"))
	g.Expect(cfg.policy).To(gomega.BeIdenticalTo(policy))
}
