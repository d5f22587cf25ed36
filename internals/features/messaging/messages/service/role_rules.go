package service

import (
	"schoolku_backend/internals/constants"
	"schoolku_backend/internals/features/messaging/messages/model"
)

// CanSend menentukan apakah senderRole boleh mengirim ke receiverRole.
// Admin bebas mengirim ke siapa saja; pegawai hanya ke siswa; siswa hanya
// ke pegawai dengan kategori "teacher".
func CanSend(senderRole, receiverRole, category string) bool {
	switch senderRole {
	case constants.RoleSuperadmin, constants.RoleAdmin:
		return true
	case constants.RoleEmployee:
		return receiverRole == model.ReceiverStudent
	case constants.RoleStudent:
		return receiverRole == model.ReceiverEmployee && category == model.CategoryTeacher
	default:
		return false
	}
}
