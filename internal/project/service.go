package project

import (
	"errors"

	"gorm.io/gorm"

	projectModel "collabhub/internal/model/project"
	userModel "collabhub/internal/model/user"
	wsModel "collabhub/internal/model/workspace"
	"collabhub/internal/permission"
	"collabhub/pkg/response"
)

type ProjectService struct {
	db         *gorm.DB
	permission *permission.PermissionService
}

func NewProjectService(db *gorm.DB) *ProjectService {
	return &ProjectService{
		db:         db,
		permission: permission.NewPermissionService(db),
	}
}

// Create 发布项目
// 仅 external/admin 可用，且需持有目标工作区的 owner/admin 角色
func (s *ProjectService) Create(userID uint, userRole string, req CreateProjectRequest) (uint, *response.BusinessError) {
	if !permission.IsAgencyOrAdmin(userRole) {
		return 0, response.NewBusinessError(
			response.WithErrorCode(response.Forbidden),
			response.WithErrorMessage("只有外部机构或管理员可以创建项目"),
		)
	}

	ok, err := s.permission.IsWorkspaceManager(req.WorkspaceID, userID)
	if err != nil {
		return 0, queryFailed(err)
	}
	if !ok {
		return 0, response.NewBusinessError(
			response.WithErrorCode(response.Forbidden),
			response.WithErrorMessage("需要持有该工作区的 owner/admin 角色"),
		)
	}

	wsID := req.WorkspaceID
	p := projectModel.Project{
		Title:       req.Title,
		Description: req.Description,
		CreatedBy:   userID,
		WorkspaceID: &wsID,
	}
	if err := s.db.Create(&p).Error; err != nil {
		return 0, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("创建项目失败"),
		)
	}

	return p.ID, nil
}

// List 按角色返回可见项目：机构/管理员看全部，学生看自己所在工作区的
func (s *ProjectService) List(userID uint, userRole string) ([]ProjectItem, *response.BusinessError) {
	var projects []projectModel.Project

	switch {
	case permission.IsAgencyOrAdmin(userRole):
		if err := s.db.Order("created_at DESC").Find(&projects).Error; err != nil {
			return nil, queryFailed(err)
		}
	case userRole == userModel.RoleStudent:
		var wsIDs []uint
		if err := s.db.Model(&wsModel.Membership{}).
			Where("user_id = ?", userID).
			Pluck("workspace_id", &wsIDs).Error; err != nil {
			return nil, queryFailed(err)
		}
		if len(wsIDs) > 0 {
			if err := s.db.Where("workspace_id IN ?", wsIDs).
				Order("created_at DESC").
				Find(&projects).Error; err != nil {
				return nil, queryFailed(err)
			}
		}
	}

	items := make([]ProjectItem, 0, len(projects))
	for _, p := range projects {
		items = append(items, ProjectItem{
			ID:          p.ID,
			Title:       p.Title,
			Description: p.Description,
			CreatedBy:   p.CreatedBy,
			WorkspaceID: p.WorkspaceID,
			Status:      p.Status,
			CreatedAt:   p.CreatedAt,
		})
	}

	return items, nil
}

// Submit 学生提交成果，项目状态无条件回到 submitted
func (s *ProjectService) Submit(projectID, userID uint, userRole string, req SubmitRequest) (uint, *response.BusinessError) {
	if userRole != userModel.RoleStudent {
		return 0, response.NewBusinessError(
			response.WithErrorCode(response.Forbidden),
			response.WithErrorMessage("只有学生可以提交"),
		)
	}

	var submissionID uint
	err := s.db.Transaction(func(tx *gorm.DB) error {
		sub := projectModel.Submission{
			ProjectID:  projectID,
			StudentID:  userID,
			ContentURL: req.ContentURL,
			Notes:      req.Notes,
		}
		if err := tx.Create(&sub).Error; err != nil {
			return err
		}
		submissionID = sub.ID

		// last-write-wins：不检查项目当前状态
		var p projectModel.Project
		if err := tx.First(&p, projectID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		return tx.Model(&p).Update("status", projectModel.StatusSubmitted).Error
	})

	if err != nil {
		return 0, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("提交失败"),
			response.WithError(err),
		)
	}

	return submissionID, nil
}

// Review 机构评审提交，项目状态跟随评审结论覆盖
func (s *ProjectService) Review(submissionID, userID uint, userRole string, req ReviewRequest) (uint, *response.BusinessError) {
	if !permission.IsAgencyOrAdmin(userRole) {
		return 0, response.NewBusinessError(
			response.WithErrorCode(response.Forbidden),
			response.WithErrorMessage("只有外部机构或管理员可以评审"),
		)
	}

	status := req.Status
	if status == "" {
		status = projectModel.ReviewApproved
	}
	if !projectModel.ValidReviewStatus(status) {
		return 0, response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("无效的评审结论"),
		)
	}

	var reviewID uint
	err := s.db.Transaction(func(tx *gorm.DB) error {
		review := projectModel.Review{
			SubmissionID: submissionID,
			ReviewerID:   userID,
			Status:       status,
			Feedback:     req.Feedback,
		}
		if err := tx.Create(&review).Error; err != nil {
			return err
		}
		reviewID = review.ID

		// 通过提交回溯项目并覆盖状态
		var sub projectModel.Submission
		if err := tx.First(&sub, submissionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		return tx.Model(&projectModel.Project{}).
			Where("id = ?", sub.ProjectID).
			Update("status", projectModel.ReviewToProjectStatus(status)).Error
	})

	if err != nil {
		return 0, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("保存评审失败"),
			response.WithError(err),
		)
	}

	return reviewID, nil
}

func queryFailed(err error) *response.BusinessError {
	return response.NewBusinessError(
		response.WithErrorCode(response.Fail),
		response.WithErrorMessage("查询失败"),
		response.WithError(err),
	)
}
