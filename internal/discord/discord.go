// Package discord connects the command catalog to Discord: it publishes
// every descriptor as a slash command and answers application-command
// interactions through the Dispatcher.
package discord

import (
	"context"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"

	"github.com/Kodylow/botimint/internal/command"
	"github.com/Kodylow/botimint/internal/decode"
	"github.com/Kodylow/botimint/internal/logging"
)

const (
	// MessageLimit is the longest message content Discord accepts.
	MessageLimit = 2000
	// AttachmentName is the file long replies are sent as.
	AttachmentName = "response.md"
	// AttachmentNotice is the content sent alongside a long reply.
	AttachmentNotice = "Response is too long for a message, see the attached file."
)

// Session is the part of *discordgo.Session the bot uses.
type Session interface {
	ApplicationCommandCreate(appID, guildID string, cmd *discordgo.ApplicationCommand, options ...discordgo.RequestOption) (*discordgo.ApplicationCommand, error)
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	InteractionResponseEdit(interaction *discordgo.Interaction, newresp *discordgo.WebhookEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

var _ Session = (*discordgo.Session)(nil)

// Options configures a Bot.
type Options struct {
	// GuildID scopes published commands to one guild; empty publishes globally.
	GuildID string
	// Concurrency bounds parallel publication requests. Zero means 1.
	Concurrency int
}

// Bot serves one Dispatcher over a Discord session.
type Bot struct {
	session     Session
	dispatcher  *command.Dispatcher
	guildID     string
	concurrency int
}

func New(session Session, dispatcher *command.Dispatcher, opts Options) *Bot {
	if opts.Concurrency < 1 {
		opts.Concurrency = 1
	}
	return &Bot{
		session:     session,
		dispatcher:  dispatcher,
		guildID:     opts.GuildID,
		concurrency: opts.Concurrency,
	}
}

// ApplicationCommand converts a descriptor to its Discord form. Required
// options come first, as Discord demands; declaration order is otherwise
// kept.
func ApplicationCommand(desc *command.Descriptor) *discordgo.ApplicationCommand {
	params := make([]command.ParameterSpec, len(desc.Params))
	copy(params, desc.Params)
	sort.SliceStable(params, func(i, j int) bool {
		return params[i].Required && !params[j].Required
	})

	cmd := &discordgo.ApplicationCommand{
		Name:        desc.Name,
		Description: desc.Description,
	}
	for _, p := range params {
		cmd.Options = append(cmd.Options, commandOption(p))
	}
	return cmd
}

func commandOption(p command.ParameterSpec) *discordgo.ApplicationCommandOption {
	opt := &discordgo.ApplicationCommandOption{
		Type:        optionType(p.Kind),
		Name:        p.Name,
		Description: optionDescription(p),
		Required:    p.Required,
	}
	for _, c := range p.Choices {
		opt.Choices = append(opt.Choices, &discordgo.ApplicationCommandOptionChoice{Name: c, Value: c})
	}
	return opt
}

func optionType(k decode.Kind) discordgo.ApplicationCommandOptionType {
	switch k {
	case decode.KindInteger:
		return discordgo.ApplicationCommandOptionInteger
	case decode.KindNumber:
		return discordgo.ApplicationCommandOptionNumber
	case decode.KindBoolean:
		return discordgo.ApplicationCommandOptionBoolean
	default:
		return discordgo.ApplicationCommandOptionString
	}
}

// optionDescription appends the default, if any, within Discord's
// 100-character limit.
func optionDescription(p command.ParameterSpec) string {
	const limit = 100
	d := p.Description
	if d == "" {
		d = p.Name
	}
	if p.Default != "" {
		withDefault := d + " (default " + p.Default + ")"
		if utf8.RuneCountInString(withDefault) <= limit {
			d = withDefault
		}
	}
	return truncate(d, limit)
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n-1]) + "…"
}

// RawOptions flattens interaction options into raw options. Integer values
// arrive from the gateway as float64 and are passed on unchanged.
func RawOptions(data []*discordgo.ApplicationCommandInteractionDataOption) []command.RawOption {
	out := make([]command.RawOption, 0, len(data))
	for _, o := range data {
		out = append(out, command.RawOption{Name: o.Name, Value: o.Value})
	}
	return out
}

// HandleInteraction answers one interaction. Only application commands are
// handled. The interaction is acknowledged first so slow node calls do not
// hit Discord's three second deadline.
func (b *Bot) HandleInteraction(ctx context.Context, i *discordgo.Interaction) {
	if i == nil || i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	data := i.ApplicationCommandData()
	log := logging.L().With("command", data.Name, "interaction", i.ID)

	err := b.session.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
	if err != nil {
		log.Warn("acknowledge interaction failed", "error", err)
		return
	}

	reply := b.dispatcher.Dispatch(ctx, data.Name, RawOptions(data.Options))

	if _, err := b.session.InteractionResponseEdit(i, replyEdit(reply)); err != nil {
		log.Warn("send reply failed", "error", err)
	}
}

func replyEdit(reply string) *discordgo.WebhookEdit {
	if utf8.RuneCountInString(reply) <= MessageLimit {
		return &discordgo.WebhookEdit{Content: &reply}
	}
	notice := AttachmentNotice
	return &discordgo.WebhookEdit{
		Content: &notice,
		Files: []*discordgo.File{{
			Name:        AttachmentName,
			ContentType: "text/markdown",
			Reader:      strings.NewReader(reply),
		}},
	}
}

// Attach registers the gateway handlers on s. Commands are published on
// every Ready event and onPublished, if set, receives the results.
func (b *Bot) Attach(ctx context.Context, s *discordgo.Session, onPublished func([]PublishResult)) {
	s.AddHandler(func(_ *discordgo.Session, r *discordgo.Ready) {
		logging.L().Info("connected to discord", "user", r.User.Username, "guilds", len(r.Guilds))
		results := b.Publish(ctx, r.User.ID)
		if onPublished != nil {
			onPublished(results)
		}
	})
	s.AddHandler(func(_ *discordgo.Session, i *discordgo.InteractionCreate) {
		b.HandleInteraction(ctx, i.Interaction)
	})
}
