package model

// Identity はカート/注文の所有者。
// ログイン済みなら UserID、ゲストなら SessionID のどちらか片方だけが入る。
type Identity struct {
	UserID    int64
	SessionID string
}

// どちらも無い場合は操作できない
func (i Identity) Valid() bool {
	return i.UserID > 0 || i.SessionID != ""
}

func (i Identity) IsUser() bool {
	return i.UserID > 0
}
