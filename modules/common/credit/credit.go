package credit

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"

	"github.com/supabase-community/supabase-go"
	"muse-studio-server/modules/common/config"
)

// maxDeductAttempts - 잔액 CAS 재시도 상한
const maxDeductAttempts = 3

type Client struct {
	supabase *supabase.Client
}

// NewClient - Credit 클라이언트 생성
func NewClient() *Client {
	cfg := config.GetConfig()

	supabaseClient, err := supabase.NewClient(cfg.SupabaseURL, cfg.SupabaseServiceKey, &supabase.ClientOptions{})
	if err != nil {
		log.Printf("❌ Failed to create Supabase client: %v", err)
		return nil
	}

	return &Client{
		supabase: supabaseClient,
	}
}

// fetchBalance - 현재 잔액 조회
func (c *Client) fetchBalance(userID string) (int, error) {
	var members []struct {
		MemberCredit int `json:"member_credit"`
	}

	data, _, err := c.supabase.From("muse_members").
		Select("member_credit", "", false).
		Eq("member_id", userID).
		Execute()

	if err != nil {
		return 0, fmt.Errorf("failed to fetch user credits: %w", err)
	}

	if err := json.Unmarshal(data, &members); err != nil {
		return 0, fmt.Errorf("failed to parse member data: %w", err)
	}

	if len(members) == 0 {
		return 0, fmt.Errorf("user not found: %s", userID)
	}

	return members[0].MemberCredit, nil
}

// CheckBalance - 이미지 생성 전 잔액 확인
func (c *Client) CheckBalance(ctx context.Context, userID string, imageCount int) (bool, error) {
	cfg := config.GetConfig()
	required := imageCount * cfg.ImagePerPrice

	balance, err := c.fetchBalance(userID)
	if err != nil {
		return false, err
	}

	hasEnough := balance >= required
	log.Printf("💳 User %s credits: %d (required: %d) - OK: %v",
		userID, balance, required, hasEnough)

	return hasEnough, nil
}

// Deduct - 크레딧 차감 및 원장 기록
func (c *Client) Deduct(ctx context.Context, userID string, productionID string, attachIDs []int) error {
	cfg := config.GetConfig()
	creditsPerImage := cfg.ImagePerPrice
	totalCredits := len(attachIDs) * creditsPerImage

	log.Printf("💰 Deducting credits: User=%s, Images=%d, Total=%d credits", userID, len(attachIDs), totalCredits)

	// 1. 잔액 차감 (compare-and-swap)
	// 같은 유저의 작업이 동시에 완료되면 읽은 잔액이 이미 낡았을 수 있으므로
	// 읽었던 값과 일치할 때만 쓰고, 일치하지 않으면 다시 읽어 재시도
	var newBalance int
	deducted := false

	for attempt := 1; attempt <= maxDeductAttempts; attempt++ {
		currentCredits, err := c.fetchBalance(userID)
		if err != nil {
			return err
		}
		newBalance = currentCredits - totalCredits

		data, _, err := c.supabase.From("muse_members").
			Update(map[string]interface{}{
				"member_credit": newBalance,
			}, "", "").
			Eq("member_id", userID).
			Eq("member_credit", strconv.Itoa(currentCredits)).
			Execute()

		if err != nil {
			return fmt.Errorf("failed to deduct credits: %w", err)
		}

		var updated []struct {
			MemberID string `json:"member_id"`
		}
		if err := json.Unmarshal(data, &updated); err != nil {
			return fmt.Errorf("failed to parse deduct result: %w", err)
		}

		if len(updated) > 0 {
			log.Printf("💰 Credit balance: %d → %d (-%d)", currentCredits, newBalance, totalCredits)
			deducted = true
			break
		}

		log.Printf("⚠️  Balance for user %s changed underneath, retrying (%d/%d)", userID, attempt, maxDeductAttempts)
	}

	if !deducted {
		return fmt.Errorf("credit balance contention for user %s", userID)
	}

	// 2. 이미지마다 원장 기록 (기록 실패는 차감을 되돌리지 않음)
	for _, attachID := range attachIDs {
		transactionData := map[string]interface{}{
			"member_id":        userID,
			"transaction_type": "DEDUCT",
			"amount":           -creditsPerImage,
			"balance_after":    newBalance,
			"description":      "Generated studio image",
			"attach_id":        attachID,
			"production_id":    productionID,
		}

		_, _, err := c.supabase.From("muse_credit_ledger").
			Insert(transactionData, false, "", "", "").
			Execute()

		if err != nil {
			log.Printf("⚠️  Failed to record transaction for attach_id %d: %v", attachID, err)
		}
	}

	log.Printf("✅ Credits deducted: %d credits from user %s", totalCredits, userID)
	return nil
}
