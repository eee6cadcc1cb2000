package hub

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"chathub/pkg/chat"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sinkCall struct {
	scope   string
	room    string
	connID  string
	event   string
	payload any
}

// fakeSink records every delivery instruction the hub emits.
type fakeSink struct {
	mu    sync.Mutex
	calls []sinkCall
}

func (s *fakeSink) SendToRoom(room, event string, payload any) {
	s.record(sinkCall{scope: "room", room: room, event: event, payload: payload})
}

func (s *fakeSink) SendToConnection(connID, event string, payload any) {
	s.record(sinkCall{scope: "connection", connID: connID, event: event, payload: payload})
}

func (s *fakeSink) SendToRoomExcluding(room, excludeID, event string, payload any) {
	s.record(sinkCall{scope: "roomExcluding", room: room, connID: excludeID, event: event, payload: payload})
}

func (s *fakeSink) Broadcast(event string, payload any) {
	s.record(sinkCall{scope: "everyone", event: event, payload: payload})
}

func (s *fakeSink) record(c sinkCall) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, c)
}

func (s *fakeSink) byEvent(event string) []sinkCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []sinkCall
	for _, c := range s.calls {
		if c.event == event {
			out = append(out, c)
		}
	}
	return out
}

func (s *fakeSink) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = nil
}

func newTestHub() (*Hub, *fakeSink) {
	h := New(0)
	h.now = func() time.Time {
		return time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)
	}
	sink := &fakeSink{}
	h.SetSink(sink)
	return h, sink
}

func TestJoinScenario(t *testing.T) {
	h, sink := newTestHub()

	h.Connect("c1")
	h.Join("c1", "alice", "general")

	joined := sink.byEvent(chat.EventUserJoined)
	require.Len(t, joined, 1)
	assert.Equal(t, "room", joined[0].scope)
	assert.Equal(t, "general", joined[0].room)
	assert.Equal(t, chat.UserJoinedPayload{UserID: "c1", Username: "alice", Room: "general"}, joined[0].payload)

	system := sink.byEvent(chat.EventSystemMessage)
	require.Len(t, system, 1)
	assert.Equal(t, "general", system[0].room)
	payload := system[0].payload.(chat.SystemMessagePayload)
	assert.Equal(t, "alice joined the chat", payload.Message)
	assert.Equal(t, "2024-05-01 12:30:00", payload.Timestamp)

	online := sink.byEvent(chat.EventOnlineUsers)
	require.Len(t, online, 1)
	assert.Equal(t, "connection", online[0].scope)
	assert.Equal(t, "c1", online[0].connID)
	assert.Equal(t, chat.OnlineUsersPayload{Users: []chat.UserInfo{{UserID: "c1", Username: "alice"}}}, online[0].payload)
}

func TestJoinDefaults(t *testing.T) {
	h, sink := newTestHub()

	h.Join("conn-12345678-extra", "", "")

	joined := sink.byEvent(chat.EventUserJoined)
	require.Len(t, joined, 1)
	payload := joined[0].payload.(chat.UserJoinedPayload)
	assert.Equal(t, "User_conn-123", payload.Username)
	assert.Equal(t, "general", payload.Room)
	assert.ElementsMatch(t, []string{"conn-12345678-extra"}, h.RoomInfo("general").Users)
}

func TestRejoinRepeatsSideEffectsWithoutDuplicateMembership(t *testing.T) {
	h, sink := newTestHub()

	h.Join("c1", "alice", "general")
	sink.reset()

	h.Join("c1", "alice", "general")

	assert.Len(t, sink.byEvent(chat.EventUserJoined), 1)
	assert.Len(t, sink.byEvent(chat.EventSystemMessage), 1)
	assert.Len(t, sink.byEvent(chat.EventOnlineUsers), 1)
	assert.Equal(t, []string{"c1"}, h.RoomInfo("general").Users)
}

func TestSendMessage(t *testing.T) {
	h, sink := newTestHub()
	h.Join("c1", "alice", "general")
	sink.reset()

	h.SendMessage("c1", "hello", "general")

	messages := sink.byEvent(chat.EventNewMessage)
	require.Len(t, messages, 1)
	assert.Equal(t, "room", messages[0].scope)
	assert.Equal(t, "general", messages[0].room)

	msg := messages[0].payload.(chat.Message)
	assert.Equal(t, "c1", msg.UserID)
	assert.Equal(t, "alice", msg.Username)
	assert.Equal(t, "hello", msg.Message)
	assert.Equal(t, "general", msg.Room)
	assert.Equal(t, "2024-05-01 12:30:00", msg.Timestamp)

	history := h.Messages(50)
	require.Len(t, history, 1)
	assert.Equal(t, msg, history[0])
}

func TestSendMessageWhitespaceOnlyIsDropped(t *testing.T) {
	h, sink := newTestHub()
	h.Join("c1", "alice", "general")
	sink.reset()

	h.SendMessage("c1", "   ", "general")

	assert.Empty(t, sink.calls)
	assert.Empty(t, h.Messages(50))
}

func TestSendMessageAnonymousFallback(t *testing.T) {
	h, sink := newTestHub()

	h.SendMessage("ghost", "boo", "")

	messages := sink.byEvent(chat.EventNewMessage)
	require.Len(t, messages, 1)
	msg := messages[0].payload.(chat.Message)
	assert.Equal(t, "Anonymous", msg.Username)
	assert.Equal(t, "general", msg.Room)
}

func TestLeaveRoom(t *testing.T) {
	h, sink := newTestHub()
	h.Join("c1", "alice", "lobby")
	sink.reset()

	h.LeaveRoom("c1", "lobby")

	assert.Empty(t, h.RoomInfo("lobby").Users)

	left := sink.byEvent(chat.EventUserLeft)
	require.Len(t, left, 1)
	assert.Equal(t, "room", left[0].scope)
	assert.Equal(t, chat.UserLeftPayload{UserID: "c1", Username: "alice", Room: "lobby"}, left[0].payload)

	system := sink.byEvent(chat.EventSystemMessage)
	require.Len(t, system, 1)
	assert.Equal(t, "alice left the chat", system[0].payload.(chat.SystemMessagePayload).Message)
}

func TestLeaveRoomUnregisteredIsNoop(t *testing.T) {
	h, sink := newTestHub()

	h.LeaveRoom("ghost", "lobby")

	assert.Empty(t, sink.calls)
}

func TestJoinThenLeaveExcludesMember(t *testing.T) {
	h, _ := newTestHub()

	h.Join("c1", "alice", "lobby")
	h.Join("c2", "bob", "lobby")
	h.LeaveRoom("c1", "lobby")

	assert.ElementsMatch(t, []string{"c2"}, h.RoomInfo("lobby").Users)
}

func TestTypingExcludesSender(t *testing.T) {
	h, sink := newTestHub()
	h.Join("a", "alice", "r")
	h.Join("b", "bob", "r")
	sink.reset()

	h.Typing("a", "r", true)

	typing := sink.byEvent(chat.EventUserTyping)
	require.Len(t, typing, 1)
	assert.Equal(t, "roomExcluding", typing[0].scope)
	assert.Equal(t, "r", typing[0].room)
	assert.Equal(t, "a", typing[0].connID)
	assert.Equal(t, chat.UserTypingPayload{UserID: "a", Username: "alice", IsTyping: true}, typing[0].payload)
}

func TestDisconnect(t *testing.T) {
	h, sink := newTestHub()
	h.Join("c1", "alice", "lobby")
	h.Join("c1", "alice", "general")
	sink.reset()

	h.Disconnect("c1")

	left := sink.byEvent(chat.EventUserLeft)
	require.Len(t, left, 1)
	assert.Equal(t, "everyone", left[0].scope)
	assert.Equal(t, chat.UserLeftPayload{UserID: "c1", Username: "alice"}, left[0].payload)

	assert.Empty(t, h.OnlineUsers())
	assert.Empty(t, h.RoomInfo("lobby").Users)
	assert.Empty(t, h.RoomInfo("general").Users)
}

func TestDisconnectUnknownIsNoop(t *testing.T) {
	h, sink := newTestHub()

	h.Disconnect("never-connected")

	assert.Empty(t, sink.calls)
}

func TestDefaultUsername(t *testing.T) {
	assert.Equal(t, "User_abcdefgh", DefaultUsername("abcdefghij"))
	assert.Equal(t, "User_ab", DefaultUsername("ab"))
}

func TestQueriesOnEmptyHub(t *testing.T) {
	h, _ := newTestHub()

	assert.Empty(t, h.OnlineUsers())
	assert.Empty(t, h.Messages(50))
	assert.Equal(t, chat.RoomInfo{Name: "nowhere", Users: []string{}}, h.RoomInfo("nowhere"))
	assert.Equal(t, 0, h.OnlineCount())
}

func TestConcurrentEvents(t *testing.T) {
	h, _ := newTestHub()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := fmt.Sprintf("c%d", n)
			h.Join(id, fmt.Sprintf("user%d", n), "general")
			h.SendMessage(id, "hi", "general")
			h.Typing(id, "general", true)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, h.OnlineCount())
	assert.Len(t, h.RoomInfo("general").Users, 50)
	assert.Len(t, h.Messages(100), 50)
}
