package types

// EntityInfo is the API shape of an entity.
type EntityInfo struct {
	GUID          int64  `json:"guid"`
	Type          string `json:"type"`
	Subtype       string `json:"subtype,omitempty"`
	OwnerGUID     int64  `json:"ownerGuid"`
	ContainerGUID int64  `json:"containerGuid"`
}

// UserInfo is the API shape of a user.
type UserInfo struct {
	GUID     int64  `json:"guid"`
	Username string `json:"username"`
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
}

// PageInfo describes the resolved page: the handler token, the context
// stack, and the owning entity if any.
type PageInfo struct {
	Handler   string      `json:"handler,omitempty"`
	Context   string      `json:"context"`
	OwnerGUID int64       `json:"ownerGuid"`
	Owner     *EntityInfo `json:"owner,omitempty"`
}
