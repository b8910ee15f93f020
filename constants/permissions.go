package constants

// Staff permissions
const (
	PermAdminFull    = "restaurant-pos.admin.full-permit"
	PermCashierFull  = "restaurant-pos.cashier.full-permit"
	PermKitchenFull  = "restaurant-pos.kitchen.full-permit"
	PermDeliveryFull = "restaurant-pos.delivery.full-permit"

	// Special permissions
	PermAny = "any"
)

// Roles
const (
	RoleAdmin    = "admin"
	RoleCashier  = "cashier"
	RoleKitchen  = "kitchen"
	RoleDelivery = "delivery"
)

// RolePermissions lists what each role is granted at login.
var RolePermissions = map[string][]string{
	RoleAdmin:    {PermAdminFull, PermCashierFull, PermKitchenFull, PermDeliveryFull},
	RoleCashier:  {PermCashierFull},
	RoleKitchen:  {PermKitchenFull},
	RoleDelivery: {PermDeliveryFull},
}

// Permission groups for convenience
var (
	FrontOfHousePermissions = []string{PermAdminFull, PermCashierFull}
	KitchenPermissions      = []string{PermAdminFull, PermCashierFull, PermKitchenFull}
	DeliveryPermissions     = []string{PermAdminFull, PermCashierFull, PermDeliveryFull}
)

// PermissionsForRole returns a copy of the permissions of role, or nil for an unknown role.
func PermissionsForRole(role string) []string {
	perms, ok := RolePermissions[role]
	if !ok {
		return nil
	}
	return append([]string(nil), perms...)
}
