package game

import (
	"log"
	"sort"
)

// 视图路径
const (
	PathHero      = "/"
	PathDashboard = "/dashboard"
	PathGeneral   = "/general"
	PathSpecial   = "/special"
)

// SceneFactory 创建一个场景实例
// 每次导航都创建新场景，离开的场景随后被丢弃
type SceneFactory func() Scene

// Router 把路径映射到场景工厂，并通过 SceneManager 切换场景
type Router struct {
	manager *SceneManager
	routes  map[string]SceneFactory
	current string

	// OnNavigate 在每次成功跳转后调用（可为 nil）
	OnNavigate func(path string)
}

// NewRouter 创建绑定到 manager 的路由器
func NewRouter(manager *SceneManager) *Router {
	return &Router{
		manager: manager,
		routes:  make(map[string]SceneFactory),
	}
}

// Handle 注册路径对应的场景工厂，重复注册会覆盖
func (r *Router) Handle(path string, factory SceneFactory) {
	r.routes[path] = factory
}

// Navigate 切换到 path 对应的场景
//
// 未注册的路径只记录日志，当前场景保持不变。
// 场景在自己的 Update 中调用 Navigate 时，调用返回后应立即结束本帧逻辑，
// 因为此时场景已经被卸载。
func (r *Router) Navigate(path string) bool {
	factory, ok := r.routes[path]
	if !ok {
		log.Printf("[Router] unknown path %q, staying on %q", path, r.current)
		return false
	}

	scene := factory()
	if scene == nil {
		log.Printf("[Router] factory for %q returned no scene", path)
		return false
	}

	log.Printf("[Router] %q -> %q", r.current, path)
	r.manager.SwitchTo(scene)
	r.current = path

	if r.OnNavigate != nil {
		r.OnNavigate(path)
	}
	return true
}

// Current 返回当前路径，尚未导航时为空
func (r *Router) Current() string {
	return r.current
}

// Paths 返回已注册的路径（按字典序）
func (r *Router) Paths() []string {
	paths := make([]string, 0, len(r.routes))
	for p := range r.routes {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
