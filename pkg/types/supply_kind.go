package types

// SupplyKind 定义物品栏中补给品的种类
// 创建顺序与物品栏从左到右的槽位顺序一致
type SupplyKind int

const (
	// SupplyFood 猫粮
	SupplyFood SupplyKind = iota
	// SupplyMilk 牛奶
	SupplyMilk
	// SupplyLitterScoop 猫砂铲
	SupplyLitterScoop
	// SupplyLitter 猫砂
	SupplyLitter
	// SupplyToy 玩具
	SupplyToy

	// supplyKindCount 补给品种类数量，必须保持在最后
	supplyKindCount
)

// supplyEmotes 补给品到情绪的映射表，每个种类恰好一项
var supplyEmotes = [...]Emote{
	SupplyFood:        EmoteEating,
	SupplyMilk:        EmoteDrinking,
	SupplyLitterScoop: EmoteSmelling,
	SupplyLitter:      EmotePeeing,
	SupplyToy:         EmotePlaying,
}

// 编译期断言：映射表长度与种类数量不一致时下标越界，无法编译
var _ = [1]struct{}{}[len(supplyEmotes)-int(supplyKindCount)]

// 中间插入新种类但漏掉映射时，对应项为零值 EmoteIdle，在包初始化时拒绝
func init() {
	for k, e := range supplyEmotes {
		if e == EmoteIdle {
			panic("types: missing emote for supply kind " + SupplyKind(k).String())
		}
	}
}

// AllSupplyKinds 按创建顺序返回全部补给品种类
func AllSupplyKinds() []SupplyKind {
	kinds := make([]SupplyKind, 0, supplyKindCount)
	for k := SupplyKind(0); k < supplyKindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// EmoteFor 返回宠物靠近该补给品时的情绪
// 对全部五种补给品都有定义；越界值不属于任何补给品，返回 EmoteIdle
func EmoteFor(kind SupplyKind) Emote {
	if kind < 0 || kind >= supplyKindCount {
		return EmoteIdle
	}
	return supplyEmotes[kind]
}

// IsValid 检查补给品种类是否在定义范围内
func (k SupplyKind) IsValid() bool {
	return k >= 0 && k < supplyKindCount
}

// String 返回补给品种类的字符串表示
func (k SupplyKind) String() string {
	switch k {
	case SupplyFood:
		return "Food"
	case SupplyMilk:
		return "Milk"
	case SupplyLitterScoop:
		return "LitterScoop"
	case SupplyLitter:
		return "Litter"
	case SupplyToy:
		return "Toy"
	default:
		return "Unknown"
	}
}
