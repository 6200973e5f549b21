package main

import (
	"context"
	"log"
	"strings"
	"time"
)

// mockPlanChunks 沒有 API Key 或呼叫失敗時回放的範例行程
var mockPlanChunks = []string{
	"1. 行程概览：\n",
	"   - 旅行主题：日本文化探索之旅\n",
	"   - 适合人群：家庭出行\n",
	"   - 行程亮点：东京现代文化、京都古典文化、大阪美食体验\n\n",
	"2. 详细行程安排：\n",
	"   - 第1天：抵达东京\n",
	"     - 上午：抵达东京成田/羽田机场，办理入境手续\n",
	"     - 中午：前往酒店办理入住，稍作休息\n",
	"     - 下午：浅草寺参观，体验传统日本文化\n",
	"     - 晚上：在隅田川游船，欣赏东京夜景\n\n",
	"   - 第2天：东京探索\n",
	"     - 上午：参观明治神宫，感受宁静的神社文化\n",
	"     - 中午：在原宿竹下通品尝特色小吃\n",
	"     - 下午：前往涩谷、新宿，体验现代都市氛围\n",
	"     - 晚上：品尝东京特色拉面\n\n",
	"   - 第3天：东京迪士尼\n",
	"     - 全天：东京迪士尼乐园或迪士尼海洋游玩\n",
	"     - 晚上：观看迪士尼烟花表演\n\n",
	"   - 第4天：前往京都\n",
	"     - 上午：乘坐新干线前往京都\n",
	"     - 中午：抵达京都，入住酒店\n",
	"     - 下午：参观伏见稻荷大社，千本鸟居\n",
	"     - 晚上：品尝京都怀石料理\n\n",
	"   - 第5天：京都文化体验\n",
	"     - 上午：参观金阁寺，欣赏日式庭园\n",
	"     - 中午：在锦市场品尝京都小吃\n",
	"     - 下午：参观清水寺，体验和服文化\n",
	"     - 晚上：返回东京\n\n",
	"3. 住宿推荐：\n",
	"   - 东京：新宿或银座区域的四星级酒店\n",
	"   - 京都：河原町区域的传统日式旅馆\n\n",
	"4. 餐饮推荐：\n",
	"   - 东京：寿司、拉面、天妇罗\n",
	"   - 京都：怀石料理、豆腐料理、抹茶甜品\n\n",
	"5. 预算分析：\n",
	"   - 交通费用：约3000元（含国际机票和新干线）\n",
	"   - 住宿费用：约4000元（5晚）\n",
	"   - 餐饮费用：约2000元\n",
	"   - 门票费用：约1500元（含迪士尼门票）\n",
	"   - 购物及其他：约2000元\n",
	"   - 总计：约12500元\n\n",
	"旅行路线：浅草寺->明治神宫->伏见稻荷大社->金阁寺->清水寺\n",
}

var _ PlanGenerator = (*mockGenerator)(nil)

// mockGenerator 模擬網路延遲，逐段送出 mockPlanChunks
type mockGenerator struct {
	delay time.Duration
}

func (m *mockGenerator) Stream(ctx context.Context, _ string, onChunk func(string) error) error {
	for _, chunk := range mockPlanChunks {
		if err := ctx.Err(); err != nil {
			return err
		}
		if m.delay > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(m.delay):
			}
		}
		if err := onChunk(chunk); err != nil {
			return err
		}
	}
	return nil
}

func (m *mockGenerator) Refine(ctx context.Context, _ []ChatPart, _ string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return strings.Join(mockPlanChunks, ""), nil
}

var _ PlanGenerator = (*fallbackGenerator)(nil)

// fallbackGenerator primary 在送出任何內容前失敗時改用 fallback
type fallbackGenerator struct {
	primary  PlanGenerator
	fallback PlanGenerator
}

func (f *fallbackGenerator) Stream(ctx context.Context, prompt string, onChunk func(string) error) error {
	sent := false
	err := f.primary.Stream(ctx, prompt, func(chunk string) error {
		sent = true
		return onChunk(chunk)
	})
	if err == nil || sent || ctx.Err() != nil {
		return err
	}
	log.Printf("Generator error, falling back to mock stream: %v", err)
	return f.fallback.Stream(ctx, prompt, onChunk)
}

func (f *fallbackGenerator) Refine(ctx context.Context, history []ChatPart, message string) (string, error) {
	text, err := f.primary.Refine(ctx, history, message)
	if err == nil || ctx.Err() != nil {
		return text, err
	}
	log.Printf("Generator error, falling back to mock reply: %v", err)
	return f.fallback.Refine(ctx, history, message)
}
