package components

// Role 实体角色
type Role int

const (
	// RolePlayer 玩家控制的挡板（左侧）
	RolePlayer Role = iota
	// RoleBot 对手挡板（右侧，静止不动）
	RoleBot
	// RoleBall 球
	RoleBall
)

// String 返回角色名称，用于日志和统计
func (r Role) String() string {
	switch r {
	case RolePlayer:
		return "player"
	case RoleBot:
		return "bot"
	case RoleBall:
		return "ball"
	default:
		return "unknown"
	}
}

// RoleComponent 标记实体的角色
// 每个实体最多只有一个角色；墙体没有角色，使用 WallComponent
type RoleComponent struct {
	Role Role
}
