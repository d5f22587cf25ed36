package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"schoolku_backend/internals/constants"
	"schoolku_backend/internals/features/messaging/messages/model"
)

func TestCanSend(t *testing.T) {
	cases := []struct {
		name         string
		senderRole   string
		receiverRole string
		category     string
		want         bool
	}{
		{"admin ke siswa", constants.RoleAdmin, model.ReceiverStudent, "", true},
		{"admin ke pegawai", constants.RoleAdmin, model.ReceiverEmployee, "", true},
		{"admin broadcast institute", constants.RoleAdmin, model.ReceiverInstitute, "", true},
		{"superadmin ke siapa saja", constants.RoleSuperadmin, model.ReceiverEmployee, "", true},
		{"pegawai ke siswa", constants.RoleEmployee, model.ReceiverStudent, "", true},
		{"pegawai ke pegawai ditolak", constants.RoleEmployee, model.ReceiverEmployee, "", false},
		{"pegawai broadcast institute ditolak", constants.RoleEmployee, model.ReceiverInstitute, "", false},
		{"siswa ke guru dengan kategori teacher", constants.RoleStudent, model.ReceiverEmployee, model.CategoryTeacher, true},
		{"siswa ke pegawai tanpa kategori ditolak", constants.RoleStudent, model.ReceiverEmployee, "", false},
		{"siswa ke siswa ditolak", constants.RoleStudent, model.ReceiverStudent, model.CategoryTeacher, false},
		{"role tak dikenal ditolak", "guest", model.ReceiverStudent, "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CanSend(tc.senderRole, tc.receiverRole, tc.category))
		})
	}
}
