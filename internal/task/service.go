package task

import (
	"gorm.io/gorm"

	taskModel "collabhub/internal/model/task"
	userModel "collabhub/internal/model/user"
	"collabhub/internal/permission"
	"collabhub/pkg/response"
)

type TaskService struct {
	db         *gorm.DB
	permission *permission.PermissionService
}

func NewTaskService(db *gorm.DB) *TaskService {
	return &TaskService{
		db:         db,
		permission: permission.NewPermissionService(db),
	}
}

// List 返回工作区全部任务，按创建时间倒序，要求调用者是已接受成员
func (s *TaskService) List(workspaceID, userID uint) ([]TaskItem, *response.BusinessError) {
	ok, err := s.permission.IsAcceptedMember(workspaceID, userID)
	if err != nil {
		return nil, queryFailed(err)
	}
	if !ok {
		return nil, accessDenied()
	}

	var tasks []taskModel.Task
	if err := s.db.Where("workspace_id = ?", workspaceID).
		Order("created_at DESC").
		Find(&tasks).Error; err != nil {
		return nil, queryFailed(err)
	}

	items := make([]TaskItem, 0, len(tasks))
	for _, t := range tasks {
		var creator userModel.User
		if err := s.db.First(&creator, t.CreatedBy).Error; err != nil {
			continue
		}
		item := TaskItem{
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			Status:      t.Status,
			Priority:    t.Priority,
			DueDate:     t.DueDate,
			CreatedBy:   creator.ToSummary(),
			CreatedAt:   t.CreatedAt,
		}
		if t.AssignedTo != nil {
			var assignee userModel.User
			if err := s.db.First(&assignee, *t.AssignedTo).Error; err == nil {
				summary := assignee.ToSummary()
				item.AssignedTo = &summary
			}
		}
		items = append(items, item)
	}

	return items, nil
}

// Create 在工作区内创建任务，要求调用者是已接受成员
func (s *TaskService) Create(workspaceID, userID uint, req CreateTaskRequest) (CreatedTask, *response.BusinessError) {
	ok, err := s.permission.IsAcceptedMember(workspaceID, userID)
	if err != nil {
		return CreatedTask{}, queryFailed(err)
	}
	if !ok {
		return CreatedTask{}, accessDenied()
	}

	priority := req.Priority
	if priority == "" {
		priority = taskModel.PriorityMedium
	}
	if !taskModel.ValidPriority(priority) {
		return CreatedTask{}, response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("无效的任务优先级"),
		)
	}

	t := taskModel.Task{
		WorkspaceID: workspaceID,
		CreatedBy:   userID,
		AssignedTo:  req.AssignedTo,
		Title:       req.Title,
		Description: req.Description,
		Priority:    priority,
		DueDate:     req.DueDate,
	}
	if err := s.db.Create(&t).Error; err != nil {
		return CreatedTask{}, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("创建任务失败"),
		)
	}

	return CreatedTask{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      taskModel.StatusPending,
		Priority:    t.Priority,
		DueDate:     t.DueDate,
	}, nil
}

// Update 局部更新任务，存在任意状态的成员关系即可修改
func (s *TaskService) Update(taskID, userID uint, req UpdateTaskRequest) *response.BusinessError {
	t, bizErr := s.findTask(taskID, userID)
	if bizErr != nil {
		return bizErr
	}

	if req.Status != nil && !taskModel.ValidStatus(*req.Status) {
		return response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("无效的任务状态"),
		)
	}
	if req.Priority != nil && !taskModel.ValidPriority(*req.Priority) {
		return response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("无效的任务优先级"),
		)
	}

	if req.Title != nil {
		t.Title = *req.Title
	}
	if req.Description != nil {
		t.Description = *req.Description
	}
	if req.Status != nil {
		t.Status = *req.Status
	}
	if req.Priority != nil {
		t.Priority = *req.Priority
	}
	if req.AssignedTo != nil {
		t.AssignedTo = req.AssignedTo
	}
	if req.DueDate != nil {
		t.DueDate = req.DueDate
	}

	if err := s.db.Save(t).Error; err != nil {
		return response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("更新任务失败"),
		)
	}

	return nil
}

// Delete 删除任务，仅创建者或持有 owner/admin 角色的成员可删
func (s *TaskService) Delete(taskID, userID uint) *response.BusinessError {
	t, bizErr := s.findTask(taskID, userID)
	if bizErr != nil {
		return bizErr
	}

	ok, err := s.permission.CanDeleteTask(t.WorkspaceID, t.CreatedBy, userID)
	if err != nil {
		return queryFailed(err)
	}
	if !ok {
		return response.NewBusinessError(
			response.WithErrorCode(response.Forbidden),
			response.WithErrorMessage("权限不足"),
		)
	}

	if err := s.db.Delete(t).Error; err != nil {
		return response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("删除任务失败"),
		)
	}

	return nil
}

// findTask 读取任务并校验调用者与所在工作区存在成员关系
func (s *TaskService) findTask(taskID, userID uint) (*taskModel.Task, *response.BusinessError) {
	var t taskModel.Task
	if err := s.db.First(&t, taskID).Error; err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.NotFound),
			response.WithErrorMessage("任务不存在"),
		)
	}

	ok, err := s.permission.IsAnyMember(t.WorkspaceID, userID)
	if err != nil {
		return nil, queryFailed(err)
	}
	if !ok {
		return nil, accessDenied()
	}

	return &t, nil
}

func accessDenied() *response.BusinessError {
	return response.NewBusinessError(
		response.WithErrorCode(response.Forbidden),
		response.WithErrorMessage("无权访问该工作区"),
	)
}

func queryFailed(err error) *response.BusinessError {
	return response.NewBusinessError(
		response.WithErrorCode(response.Fail),
		response.WithErrorMessage("查询失败"),
		response.WithError(err),
	)
}
