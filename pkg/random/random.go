// Package random 提供特效系统使用的随机数来源
//
// 所有位置、尺寸、时长和概率判定都通过 Source 接口取值，
// 测试时可以注入 Sequence 得到确定性的结果，调用方无需改动。
package random

import (
	"math/rand/v2"
)

// Source 均匀分布随机数来源
type Source interface {
	// Uniform 返回 [min, max) 区间内的均匀分布值
	Uniform(min, max float64) float64
}

// Rand 基于 PCG 的可播种随机源
type Rand struct {
	r *rand.Rand
}

// NewSeeded 使用给定种子创建随机源，相同种子产生相同序列
func NewSeeded(seed uint64) *Rand {
	return &Rand{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Uniform 返回 [min, max) 区间内的值
func (r *Rand) Uniform(min, max float64) float64 {
	return min + r.r.Float64()*(max-min)
}

// Sequence 按顺序循环返回预设值的随机源（测试用）
//
// 每个预设值应位于 [0, 1) 区间，Uniform 会将其映射到 [min, max)。
type Sequence struct {
	values []float64
	next   int
}

// NewSequence 创建循环序列随机源，values 为空时始终返回 min
func NewSequence(values ...float64) *Sequence {
	return &Sequence{values: values}
}

// Uniform 取下一个预设值并映射到 [min, max)
func (s *Sequence) Uniform(min, max float64) float64 {
	if len(s.values) == 0 {
		return min
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	return min + v*(max-min)
}

// Draws 返回已经取值的次数
func (s *Sequence) Draws() int {
	return s.next
}

// Chance 进行一次伯努利试验，成功概率为 p
func Chance(src Source, p float64) bool {
	return src.Uniform(0, 1) < p
}

// Weighted 带权重的候选项
type Weighted[T any] struct {
	Value  T
	Weight float64
}

// Choice 按权重随机选择一个候选项
//
// 权重非正的候选项永远不会被选中；所有权重都非正时返回零值和 false。
func Choice[T any](src Source, options []Weighted[T]) (T, bool) {
	var zero T
	total := 0.0
	for _, o := range options {
		if o.Weight > 0 {
			total += o.Weight
		}
	}
	if total <= 0 {
		return zero, false
	}

	pick := src.Uniform(0, total)
	for _, o := range options {
		if o.Weight <= 0 {
			continue
		}
		if pick < o.Weight {
			return o.Value, true
		}
		pick -= o.Weight
	}

	// 浮点误差兜底：返回最后一个有效候选项
	for i := len(options) - 1; i >= 0; i-- {
		if options[i].Weight > 0 {
			return options[i].Value, true
		}
	}
	return zero, false
}
