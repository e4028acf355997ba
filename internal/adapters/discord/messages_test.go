package discord

import (
	"context"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentReply struct {
	channel string
	content string
	ref     *discordgo.MessageReference
}

func captureReplies(fs *FakeSession) *[]sentReply {
	out := &[]sentReply{}
	fs.ChannelMessageSendReplyFunc = func(channelID, content string, ref *discordgo.MessageReference, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
		*out = append(*out, sentReply{channelID, content, ref})
		return &discordgo.Message{}, nil
	}
	return out
}

func msg(authorID string, mentions ...*discordgo.User) *discordgo.Message {
	return &discordgo.Message{
		ID:        "m-" + authorID,
		ChannelID: "general",
		GuildID:   "g1",
		Author:    &discordgo.User{ID: authorID, Username: "user-" + authorID},
		Mentions:  mentions,
	}
}

func TestWelcomeBack(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	replies := captureReplies(e.fs)
	_, err := e.away.SetAway(ctx, "u1", "en el gym")
	require.NoError(t, err)

	e.r.HandleMessage(ctx, msg("u1"))
	require.Len(t, *replies, 1)
	r := (*replies)[0]
	assert.Equal(t, "Welcome back! You were AFK: en el gym", r.content)
	assert.Equal(t, "general", r.channel)
	require.NotNil(t, r.ref)
	assert.Equal(t, "m-u1", r.ref.MessageID)

	// ya no está AFK: nadie avisa al mencionarlo
	e.r.HandleMessage(ctx, msg("u2", &discordgo.User{ID: "u1", Username: "user-u1"}))
	assert.Len(t, *replies, 1)
}

func TestMentionNoticeOncePerUser(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	replies := captureReplies(e.fs)
	_, err := e.away.SetAway(ctx, "u1", "")
	require.NoError(t, err)
	_, err = e.away.SetAway(ctx, "u3", "durmiendo")
	require.NoError(t, err)

	u1 := &discordgo.User{ID: "u1", Username: "ana"}
	e.r.HandleMessage(ctx, msg("u2", u1, u1, &discordgo.User{ID: "u4", Username: "x"}, &discordgo.User{ID: "u3", Username: "leo"}))

	require.Len(t, *replies, 2)
	assert.Equal(t, "ana is currently AFK: AFK", (*replies)[0].content)
	assert.Equal(t, "leo is currently AFK: durmiendo", (*replies)[1].content)

	// la mención no limpia el estado
	away, err := e.away.Mentioned(ctx, []string{"u1", "u3"})
	require.NoError(t, err)
	assert.Len(t, away, 2)
}

func TestAuthorMentioningSelfIsClearedFirst(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	replies := captureReplies(e.fs)
	_, err := e.away.SetAway(ctx, "u1", "brb")
	require.NoError(t, err)

	e.r.HandleMessage(ctx, msg("u1", &discordgo.User{ID: "u1", Username: "user-u1"}))
	require.Len(t, *replies, 1)
	assert.Equal(t, "Welcome back! You were AFK: brb", (*replies)[0].content)
}

func TestBotMessagesIgnored(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	_, err := e.away.SetAway(ctx, "bot1", "x")
	require.NoError(t, err)

	m := msg("bot1")
	m.Author.Bot = true
	e.r.HandleMessage(ctx, m)
	e.r.HandleMessage(ctx, nil)

	assert.Empty(t, e.fs.Trace())
	_, back, err := e.away.Return(ctx, "bot1")
	require.NoError(t, err)
	assert.True(t, back)
}

func TestAFKCommandDoesNotClearItself(t *testing.T) {
	e := newTestEnv(t)
	e.dispatch(slash("g1", "u1", CmdAFK, strOpt("message", "fuera")))

	away, err := e.away.Mentioned(context.Background(), []string{"u1"})
	require.NoError(t, err)
	require.Len(t, away, 1)
	assert.Equal(t, "fuera", away[0].Message)
}
