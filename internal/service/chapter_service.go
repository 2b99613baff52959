package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"learning_platform_backend/internal/config"
	"learning_platform_backend/internal/model"
	"learning_platform_backend/internal/repository"
	"learning_platform_backend/internal/util"
	"learning_platform_backend/pkg/logger"
	"learning_platform_backend/pkg/monitoring"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// 章节目录命名约定：<序号>-<slug>，如 "01-introduction"
var chapterDirPattern = regexp.MustCompile(`^(\d+)-(.+)$`)

const (
	availableChaptersCacheKey = "chapters:available"
	chapterCacheTTL           = 5 * time.Minute
)

type ChapterService struct {
	ChapterRepo *repository.ChapterRepository
	Cfg         *config.Config
	Redis       *redis.Client
}

func NewChapterService(chapterRepo *repository.ChapterRepository, cfg *config.Config, rdb *redis.Client) *ChapterService {
	return &ChapterService{
		ChapterRepo: chapterRepo,
		Cfg:         cfg,
		Redis:       rdb,
	}
}

type chapterMetadata struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
}

// SyncFromFilesystem 把内容根目录下的章节目录同步进数据库。
// 逐目录处理：单个目录读取或解析失败只记录错误并跳过，不中断整次同步。
// 重复执行结果一致（按 chapter_id upsert）。
func (s *ChapterService) SyncFromFilesystem(root string) (int, []error) {
	logger.Log.Info("Syncing chapters from filesystem", zap.String("path", root))

	entries, err := os.ReadDir(root)
	if err != nil {
		logger.Log.Error("Failed to read chapters directory", zap.String("path", root), zap.Error(err))
		return 0, []error{err}
	}

	loaded := 0
	var errs []error

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		dirName := entry.Name()
		matches := chapterDirPattern.FindStringSubmatch(dirName)
		if matches == nil {
			// 不符合命名约定的目录直接忽略，不算错误
			continue
		}

		orderIndex, err := strconv.Atoi(matches[1])
		if err != nil {
			logger.Log.Error("Invalid order prefix in chapter directory",
				zap.String("dir", dirName), zap.Error(err))
			errs = append(errs, fmt.Errorf("chapter %s: %w", dirName, err))
			continue
		}

		meta := s.readMetadata(filepath.Join(root, dirName), dirName)

		if err := s.upsertChapter(dirName, meta, orderIndex); err != nil {
			logger.Log.Error("Failed to save chapter", zap.String("dir", dirName), zap.Error(err))
			errs = append(errs, fmt.Errorf("chapter %s: %w", dirName, err))
			continue
		}

		loaded++
		logger.Log.Info("Loaded chapter", zap.String("chapterId", dirName), zap.String("title", meta.Title))
	}

	s.invalidateCache()
	monitoring.ChapterSyncErrors.Add(float64(len(errs)))
	logger.Log.Info("Chapter sync finished", zap.Int("loaded", loaded), zap.Int("errors", len(errs)))

	return loaded, errs
}

func (s *ChapterService) upsertChapter(chapterID string, meta chapterMetadata, orderIndex int) error {
	existing, err := s.ChapterRepo.FindByChapterID(chapterID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s.ChapterRepo.Create(&model.Chapter{
			ChapterID:  chapterID,
			Title:      meta.Title,
			Summary:    meta.Summary,
			OrderIndex: orderIndex,
			Available:  true,
		})
	}
	if err != nil {
		return err
	}

	existing.Title = meta.Title
	existing.Summary = meta.Summary
	existing.OrderIndex = orderIndex
	existing.Available = true
	return s.ChapterRepo.Update(existing)
}

// readMetadata 读取目录下可选的 metadata.json；缺失或损坏时退回默认值
func (s *ChapterService) readMetadata(chapterDir, chapterID string) chapterMetadata {
	meta := chapterMetadata{
		Title:   titleFromChapterID(chapterID),
		Summary: "",
	}

	data, err := os.ReadFile(filepath.Join(chapterDir, "metadata.json"))
	if err != nil {
		return meta
	}

	var parsed chapterMetadata
	if err := json.Unmarshal(data, &parsed); err != nil {
		logger.Log.Warn("Malformed metadata.json, using defaults",
			zap.String("chapterId", chapterID), zap.Error(err))
		return meta
	}

	if parsed.Title != "" {
		meta.Title = parsed.Title
	}
	meta.Summary = parsed.Summary
	return meta
}

// titleFromChapterID 由目录名生成标题："01-getting-started" -> "Getting Started"
func titleFromChapterID(chapterID string) string {
	matches := chapterDirPattern.FindStringSubmatch(chapterID)
	if matches == nil {
		return chapterID
	}

	var words []string
	for _, word := range strings.Split(matches[2], "-") {
		if word == "" {
			continue
		}
		words = append(words, strings.ToUpper(word[:1])+word[1:])
	}
	if len(words) == 0 {
		return matches[2]
	}
	return strings.Join(words, " ")
}

func (s *ChapterService) GetAllChapters() ([]model.Chapter, error) {
	return s.ChapterRepo.FindAllOrdered()
}

// GetAvailableChapters 优先走Redis缓存，同步后缓存失效
func (s *ChapterService) GetAvailableChapters() ([]model.Chapter, error) {
	ctx := context.Background()

	if s.Redis != nil {
		cached, err := s.Redis.Get(ctx, availableChaptersCacheKey).Result()
		if err == nil {
			var chapters []model.Chapter
			if err := json.Unmarshal([]byte(cached), &chapters); err == nil {
				return chapters, nil
			}
		}
	}

	chapters, err := s.ChapterRepo.FindAvailableOrdered()
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if data, err := json.Marshal(chapters); err == nil {
			s.Redis.Set(ctx, availableChaptersCacheKey, data, chapterCacheTTL)
		}
	}

	return chapters, nil
}

func (s *ChapterService) GetChapterByID(chapterID string) (*model.Chapter, error) {
	chapter, err := s.ChapterRepo.FindByChapterID(chapterID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrChapterNotFound
	}
	if err != nil {
		return nil, err
	}
	return chapter, nil
}

func (s *ChapterService) invalidateCache() {
	if s.Redis == nil {
		return
	}
	if err := s.Redis.Del(context.Background(), availableChaptersCacheKey).Err(); err != nil {
		logger.Log.Warn("Failed to invalidate chapter cache", zap.Error(err))
	}
}
