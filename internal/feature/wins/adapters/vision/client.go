// Package vision はGoogle Cloud Vision APIを使用した画像モデレーションクライアントを提供します。
package vision

import (
	"context"
	"fmt"

	gvision "cloud.google.com/go/vision/v2/apiv1"
	visionpb "cloud.google.com/go/vision/v2/apiv1/visionpb"

	"walloffame_backend/internal/feature/wins/usecase"
)

// SafeSearchModerator はGoogle Cloud VisionのSafeSearch検出で
// アップロード画像が公開ウォールに掲載可能かを判定します。
type SafeSearchModerator struct {
	client *gvision.ImageAnnotatorClient
}

// SafeSearchModeratorがImageModeratorを実装していることをコンパイル時に検証します。
var _ usecase.ImageModerator = (*SafeSearchModerator)(nil)

// NewSafeSearchModerator はADCを使用してSafeSearchModeratorの新しいインスタンスを生成します。
func NewSafeSearchModerator(ctx context.Context) (*SafeSearchModerator, error) {
	client, err := gvision.NewImageAnnotatorClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create vision client: %w", err)
	}
	return &SafeSearchModerator{client: client}, nil
}

// Close はVision APIクライアントを解放します。
func (v *SafeSearchModerator) Close() error {
	return v.client.Close()
}

// Moderate は画像バイト列をSafeSearchで検査します。
// アダルト・暴力・セクシャルな内容がLIKELY以上の場合、usecase.ErrImageRejectedを返します。
func (v *SafeSearchModerator) Moderate(ctx context.Context, imageData []byte) error {
	req := &visionpb.BatchAnnotateImagesRequest{
		Requests: []*visionpb.AnnotateImageRequest{
			{
				Image: &visionpb.Image{Content: imageData},
				Features: []*visionpb.Feature{
					{Type: visionpb.Feature_SAFE_SEARCH_DETECTION},
				},
			},
		},
	}

	resp, err := v.client.BatchAnnotateImages(ctx, req)
	if err != nil {
		return fmt.Errorf("vision API request failed: %w", err)
	}

	if len(resp.Responses) == 0 {
		return nil
	}
	if resp.Responses[0].Error != nil {
		return fmt.Errorf("vision API error: %s", resp.Responses[0].Error.Message)
	}

	ann := resp.Responses[0].SafeSearchAnnotation
	if ann == nil {
		return nil
	}
	if unsafe(ann.Adult) || unsafe(ann.Violence) || unsafe(ann.Racy) {
		return usecase.ErrImageRejected
	}
	return nil
}

// unsafe はSafeSearchの尤度が掲載不可のしきい値以上かを判定します。
func unsafe(l visionpb.Likelihood) bool {
	return l >= visionpb.Likelihood_LIKELY
}
