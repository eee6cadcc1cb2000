package hub

// RoomDirectory maps room names to member connection ids. Rooms are
// created implicitly on first join and never deleted; an empty room stays
// queryable. The Hub serializes all access.
type RoomDirectory struct {
	rooms map[string]map[string]struct{}
}

func NewRoomDirectory() *RoomDirectory {
	return &RoomDirectory{rooms: make(map[string]map[string]struct{})}
}

// Join adds connID to room, creating the room if needed. Re-joining is a
// no-op on the member set.
func (d *RoomDirectory) Join(room, connID string) {
	members, ok := d.rooms[room]
	if !ok {
		members = make(map[string]struct{})
		d.rooms[room] = members
	}
	members[connID] = struct{}{}
}

// Leave removes connID from room. Unknown rooms and absent members are
// silent no-ops.
func (d *RoomDirectory) Leave(room, connID string) {
	if members, ok := d.rooms[room]; ok {
		delete(members, connID)
	}
}

// LeaveAll removes connID from every room it is a member of.
func (d *RoomDirectory) LeaveAll(connID string) {
	for _, members := range d.rooms {
		delete(members, connID)
	}
}

// Members returns the member ids of room, empty for an unknown room.
// Order is unspecified.
func (d *RoomDirectory) Members(room string) []string {
	members := d.rooms[room]
	ids := make([]string, 0, len(members))
	for id := range members {
		ids = append(ids, id)
	}
	return ids
}

// Counts returns the member count per known room.
func (d *RoomDirectory) Counts() map[string]int {
	counts := make(map[string]int, len(d.rooms))
	for name, members := range d.rooms {
		counts[name] = len(members)
	}
	return counts
}
