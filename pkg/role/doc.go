// Package role manages role assignments for identities.
//
// Each identity holds at most one RoleAssignment row. The "admin" role gates
// member creation; any other value (or no row at all) means an ordinary member.
//
//	repo := role.NewPostgresRoleRepository(pool)
//	service := role.NewRoleService(repo)
//
//	// Gate an admin-only operation
//	ok, err := service.HasRole(ctx, userID, role.RoleAdmin)
//
//	// Grant, or upgrade in place
//	outcome, err := service.EnsureRole(ctx, userID, role.RoleAdmin)
//
//	// Identity superseded: move its assignment instead of duplicating it
//	moved, err := service.MoveAssignment(ctx, oldUserID, newUserID)
package role
