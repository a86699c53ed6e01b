package popup

import (
	"context"
	"fmt"

	"github.com/bnema/miniworld/internal/application/port"
	"github.com/bnema/miniworld/internal/domain/entity"
	"github.com/bnema/miniworld/internal/domain/service"
)

// evaluateAutoClose starts the empty-page check for a successful navigation.
// UI thread only.
func (c *Controller) evaluateAutoClose(url string) {
	policy := c.opts.AutoClose
	if !policy.IsCandidateSuccessPage(url) {
		return
	}

	c.log().Debug().Str("url", url).Msg("candidate success page, probing text length")
	go c.probe(c.surface, url, c.navigation)
}

func (c *Controller) probe(surface port.Surface, url string, navigation uint64) {
	ctx, cancel := context.WithTimeout(c.probeCtx, c.opts.ProbeTimeout)
	defer cancel()

	raw, err := surface.EvaluateScript(ctx, service.TextLengthProbeScript)
	c.deps.UI.Post(func() {
		c.handleProbeResult(url, navigation, raw, err)
	})
}

// handleProbeResult schedules the close only on an unambiguous empty page
// that is still the current one.
func (c *Controller) handleProbeResult(url string, navigation uint64, raw string, err error) {
	if c.isClosed() {
		return
	}
	log := c.log().With().Str("url", url).Logger()

	if navigation != c.navigation {
		log.Debug().Msg("page changed while probing, ignoring result")
		return
	}

	if err != nil {
		log.Debug().Err(fmt.Errorf("%w: %w", ErrScriptProbe, err)).Msg("keeping popup open")
		return
	}

	length, ok := service.ParseProbeResult(raw)
	if !ok {
		log.Debug().Err(ErrScriptProbe).Str("result", raw).Msg("ambiguous probe result, keeping popup open")
		return
	}

	if !c.opts.AutoClose.IsEmptyPage(length) {
		log.Debug().Int("text_length", length).Msg("page has content, keeping popup open")
		return
	}

	c.scheduleAutoClose(length)
}

func (c *Controller) scheduleAutoClose(length int) {
	if c.autoClose != nil {
		return
	}

	delay := c.opts.AutoClose.Delay
	c.log().Info().
		Int("text_length", length).
		Dur("delay", delay).
		Msg("redirect-only page detected, scheduling popup close")

	c.autoClose = c.deps.Clock.AfterFunc(delay, func() {
		c.deps.UI.Post(func() {
			if c.isClosed() {
				return
			}
			c.autoClose = nil
			c.Close(entity.CloseReasonAutoClose)
		})
	})
}

func (c *Controller) stopAutoClose() {
	if c.autoClose == nil {
		return
	}
	c.autoClose.Stop()
	c.autoClose = nil
}
