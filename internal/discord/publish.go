package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/sync/errgroup"

	"github.com/Kodylow/botimint/internal/logging"
)

// PublishResult is the outcome of publishing one command.
type PublishResult struct {
	Command string
	// ID is the identifier Discord assigned; empty on failure.
	ID  string
	Err error
}

// Publish registers every command of the dispatcher's registry with
// Discord. Failures are logged and returned per command; they never stop
// the remaining publications. Results are in registration order.
func (b *Bot) Publish(ctx context.Context, appID string) []PublishResult {
	descs := b.dispatcher.Registry().Descriptors()
	results := make([]PublishResult, len(descs))
	progress := logging.NewCountProgress("publish commands", len(descs))

	var g errgroup.Group
	g.SetLimit(b.concurrency)
	for i, desc := range descs {
		results[i].Command = desc.Name
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				progress.Step(err)
				return nil
			}
			created, err := b.session.ApplicationCommandCreate(appID, b.guildID, ApplicationCommand(desc), discordgo.WithContext(ctx))
			if err != nil {
				logging.L().Warn("publish command failed", "command", desc.Name, "error", err)
				results[i].Err = err
			} else if created != nil {
				results[i].ID = created.ID
			}
			progress.Step(err)
			return nil
		})
	}
	_ = g.Wait()
	progress.Finish()

	return results
}
