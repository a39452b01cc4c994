package response

import (
	"storezee/internal/usecase/queries"
)

type AddonListResponse struct {
	Success bool                 `json:"success"`
	Data    []*queries.AddonView `json:"data"`
}

type StorageUnitListResponse struct {
	Success bool                       `json:"success"`
	Data    []*queries.StorageUnitView `json:"data"`
}

// UserRoleResponse reports an unknown phone as success:false with a 200, which
// the login screen reads as "no account yet".
type UserRoleResponse struct {
	Success bool                      `json:"success"`
	Message string                    `json:"message,omitempty"`
	Data    *queries.CustomerRoleView `json:"data,omitempty"`
}

func FromAddonViews(views []*queries.AddonView) AddonListResponse {
	if views == nil {
		views = []*queries.AddonView{}
	}
	return AddonListResponse{Success: true, Data: views}
}

func FromStorageUnitViews(views []*queries.StorageUnitView) StorageUnitListResponse {
	if views == nil {
		views = []*queries.StorageUnitView{}
	}
	return StorageUnitListResponse{Success: true, Data: views}
}

func FromCustomerRoleView(view *queries.CustomerRoleView) UserRoleResponse {
	return UserRoleResponse{Success: true, Data: view}
}

func UserNotFound() UserRoleResponse {
	return UserRoleResponse{Success: false, Message: "User not found"}
}
