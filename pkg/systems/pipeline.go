package systems

import (
	"github.com/decker502/catpet/pkg/events"
)

// 管线阶段名称，顺序即执行顺序
const (
	// StagePointerDispatch 分发本帧排队的指针事件（抚摸 + 拖拽）
	StagePointerDispatch = "pointer-dispatch"
	// StageProximity 靠近检测，覆盖抚摸写入的情绪
	StageProximity = "proximity"
	// StagePetAnimation 按最终情绪推进精灵帧
	StagePetAnimation = "pet-animation"
	// StageSupplyReturn 补给品归位
	StageSupplyReturn = "supply-return"
)

// Stage 管线中的一个阶段
type Stage struct {
	Name   string
	Update func(deltaTime float64)
}

// Pipeline 每帧按固定顺序执行各阶段
//
// 顺序是行为的一部分：抚摸必须先于靠近检测写情绪，
// 二者都必须先于动画读取情绪。归位与宠物无关，放在最后。
type Pipeline struct {
	stages []Stage
}

// PipelineSystems 组装管线所需的系统
type PipelineSystems struct {
	Queue      *events.Queue
	Dispatcher *events.Dispatcher
	Proximity  *ProximitySystem
	Animation  *PetAnimationSystem
	Return     *SupplyReturnSystem
}

// NewPipeline 按固定阶段顺序创建管线
func NewPipeline(sys PipelineSystems) *Pipeline {
	return &Pipeline{
		stages: []Stage{
			{Name: StagePointerDispatch, Update: func(float64) { sys.Dispatcher.DispatchAll(sys.Queue) }},
			{Name: StageProximity, Update: sys.Proximity.Update},
			{Name: StagePetAnimation, Update: sys.Animation.Update},
			{Name: StageSupplyReturn, Update: sys.Return.Update},
		},
	}
}

// Update 执行一帧
func (p *Pipeline) Update(deltaTime float64) {
	for _, stage := range p.stages {
		stage.Update(deltaTime)
	}
}

// StageNames 返回阶段名称（执行顺序）
func (p *Pipeline) StageNames() []string {
	names := make([]string, 0, len(p.stages))
	for _, stage := range p.stages {
		names = append(names, stage.Name)
	}
	return names
}
