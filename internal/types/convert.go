package types

import (
	"github.com/villagehq/village/internal/model"

	"github.com/jinzhu/copier"
)

// ToEntityInfo converts a model.Entity to its API shape.
func ToEntityInfo(e *model.Entity) *EntityInfo {
	if e == nil {
		return nil
	}
	var info EntityInfo
	_ = copier.Copy(&info, e)
	return &info
}

// ToUserInfo converts a model.User to its API shape.
func ToUserInfo(u *model.User) *UserInfo {
	if u == nil {
		return nil
	}
	var info UserInfo
	_ = copier.Copy(&info, u)
	return &info
}
