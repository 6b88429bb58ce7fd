package animation

// 英雄区动画名称
const (
	FloatParticle = "floatParticle"
	GlitterFall   = "glitterFall"
	SparkleAnim   = "sparkleAnim"
	GradientShift = "gradientShift"
	FadeInUp      = "fadeInUp"
	SlideInDown   = "slideInDown"
	FloatShip     = "floatShip"
	Wave          = "wave"
)

// HeroSheetName 英雄区共享动画表的名称
const HeroSheetName = "hero-effects"

// HeroSheet 构建英雄区共享的动画表
//
// 包含粒子漂浮、闪粉下落、光点闪烁等关键帧，以及文字入场动画的类规则。
// 每次调用返回新实例，调用方可以安全地修改。
func HeroSheet() *Sheet {
	fade := Track{{At: 0, Value: 0}, {At: 0.1, Value: 1}, {At: 0.9, Value: 1}, {At: 1, Value: 0}}

	return &Sheet{
		Name: HeroSheetName,
		Animations: []*Animation{
			{
				Name:       FloatParticle,
				TranslateX: Track{{At: 0, Value: 0}, {At: 0.5, Value: 50}, {At: 1, Value: 0}},
				TranslateY: Track{{At: 0, Value: 0}, {At: 0.5, Value: -100}, {At: 1, Value: 0}},
				Rotate:     Track{{At: 0, Value: 0}, {At: 0.5, Value: 180}, {At: 1, Value: 0}},
				Opacity:    fade,
			},
			{
				Name:       GlitterFall,
				TranslateY: Track{{At: 0, Value: -100}, {At: 1, Value: 100, Unit: VH}},
				Rotate:     Track{{At: 0, Value: 0}, {At: 1, Value: 360}},
				Opacity:    fade,
			},
			{
				Name:    SparkleAnim,
				Scale:   Track{{At: 0, Value: 0}, {At: 1, Value: 1.5}},
				Rotate:  Track{{At: 0, Value: 0}, {At: 1, Value: 180}},
				Opacity: Track{{At: 0, Value: 1}, {At: 1, Value: 0}},
			},
			{
				// 渐变偏移百分比，由标题文字着色使用
				Name:       GradientShift,
				TranslateX: Track{{At: 0, Value: 0}, {At: 0.5, Value: 100}, {At: 1, Value: 0}},
			},
			{
				Name:       FadeInUp,
				TranslateY: Track{{At: 0, Value: 30}, {At: 1, Value: 0}},
				Opacity:    Track{{At: 0, Value: 0}, {At: 1, Value: 1}},
			},
			{
				Name:       SlideInDown,
				TranslateY: Track{{At: 0, Value: -30}, {At: 1, Value: 0}},
				Opacity:    Track{{At: 0, Value: 0}, {At: 1, Value: 1}},
			},
			{
				Name:       FloatShip,
				TranslateY: Track{{At: 0, Value: 0}, {At: 0.5, Value: -10}, {At: 1, Value: 0}},
			},
			{
				Name:    Wave,
				ScaleX:  Track{{At: 0, Value: 1}, {At: 0.5, Value: 1.5}, {At: 1, Value: 1}},
				ScaleY:  Track{{At: 0, Value: 1}, {At: 0.5, Value: 0.5}, {At: 1, Value: 1}},
				Opacity: Track{{At: 0, Value: 0}, {At: 0.5, Value: 1}, {At: 1, Value: 0}},
			},
		},
		Rules: []Rule{
			{Class: "gradient-text", Animation: GradientShift, Timing: Timing{Duration: 3, Easing: EaseInOut, Infinite: true}},
			{Class: "fade-in-up", Animation: FadeInUp, Timing: Timing{Duration: 1, Easing: EaseOut, Fill: FillForwards}},
			{Class: "fade-in-up-delay-1", Animation: FadeInUp, Timing: Timing{Duration: 1, Delay: 0.3, Easing: EaseOut, Fill: FillBoth}},
			{Class: "fade-in-up-delay-2", Animation: FadeInUp, Timing: Timing{Duration: 1, Delay: 0.6, Easing: EaseOut, Fill: FillBoth}},
			{Class: "fade-in-up-delay-3", Animation: FadeInUp, Timing: Timing{Duration: 1, Delay: 0.9, Easing: EaseOut, Fill: FillBoth}},
			{Class: "fade-in-up-delay-4", Animation: FadeInUp, Timing: Timing{Duration: 1, Delay: 1.2, Easing: EaseOut, Fill: FillBoth}},
			{Class: "slide-in-down", Animation: SlideInDown, Timing: Timing{Duration: 0.8, Easing: EaseOut, Fill: FillForwards}},
			{Class: "ship-float", Animation: FloatShip, Timing: Timing{Duration: 4, Easing: EaseInOut, Infinite: true}},
			{Class: "wave-anim", Animation: Wave, Timing: Timing{Duration: 2, Easing: EaseInOut, Infinite: true}},
			{Class: "wave-anim-delay", Animation: Wave, Timing: Timing{Duration: 2, Delay: -1, Easing: EaseInOut, Infinite: true}},
		},
	}
}

// Apply samples a class rule for an element that has existed for elapsed
// seconds. Without the rule (sheet not injected) the element is unanimated.
func (r *Registry) Apply(class string, elapsed, viewportH float64) Transform {
	rule, ok := r.Rule(class)
	if !ok {
		return Identity()
	}
	anim, ok := r.Animation(rule.Animation)
	if !ok {
		return Identity()
	}
	return anim.Sample(elapsed, rule.Timing, viewportH)
}
