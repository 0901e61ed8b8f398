package service

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

type sequenceIDs struct {
	prefix string
	next   int
}

func (g *sequenceIDs) NewID() string {
	g.next++
	return fmt.Sprintf("%s-%d", g.prefix, g.next)
}

func newTestLogger() (*logrus.Logger, *test.Hook) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	return logger, hook
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
