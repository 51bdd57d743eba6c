package file

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	userModel "collabhub/internal/model/user"
	wsModel "collabhub/internal/model/workspace"
	"collabhub/internal/testutils"
	"collabhub/pkg/response"
)

// makeFileHeader 通过 multipart 编解码构造真实的文件头
func makeFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	fw, err := w.CreateFormFile("file", filename)
	assert.NoError(t, err)
	_, err = fw.Write(content)
	assert.NoError(t, err)
	assert.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	assert.NoError(t, req.ParseMultipartForm(32<<20))

	return req.MultipartForm.File["file"][0]
}

// saveTo 测试用的落盘回调，把 multipart 内容写到目标路径
func saveTo(fh *multipart.FileHeader) func(dst string) error {
	return func(dst string) error {
		src, err := fh.Open()
		if err != nil {
			return err
		}
		defer src.Close()

		out, err := os.Create(dst)
		if err != nil {
			return err
		}
		defer out.Close()

		_, err = io.Copy(out, src)
		return err
	}
}

// TestUploadAndDownload 上传落盘落库，下载校验成员关系
func TestUploadAndDownload(t *testing.T) {
	testutils.SetupTestConfig(t)
	db := testutils.SetupTestDB(t)
	service := NewFileService(db)

	owner := testutils.CreateTestUser(db, testutils.WithRole(userModel.RoleExternal))
	ws := testutils.CreateTestWorkspace(db, owner.ID)
	invited := testutils.CreateTestUser(db)
	testutils.CreateTestMembership(db, invited.ID, ws.ID, wsModel.RoleMember, wsModel.StatusInvited)
	outsider := testutils.CreateTestUser(db)

	content := []byte("需求说明书正文")
	fh := makeFileHeader(t, "需求说明书.docx", content)

	uploaded, err := service.Upload(ws.ID, owner.ID, fh, "初稿", saveTo(fh))
	assert.Nil(t, err)
	assert.NotZero(t, uploaded.ID)
	assert.Equal(t, "需求说明书.docx", uploaded.OriginalFilename)
	assert.NotEqual(t, uploaded.OriginalFilename, uploaded.Filename)
	assert.Equal(t, int64(len(content)), uploaded.FileSize)

	t.Run("已接受成员查看文件列表", func(t *testing.T) {
		items, err := service.List(ws.ID, owner.ID)
		assert.Nil(t, err)
		assert.Len(t, items, 1)
		assert.Equal(t, "初稿", items[0].Description)
		assert.Equal(t, owner.ID, items[0].UploadedBy.ID)
	})

	t.Run("受邀未接受的成员不能看列表", func(t *testing.T) {
		_, err := service.List(ws.ID, invited.ID)
		assert.NotNil(t, err)
		assert.Equal(t, response.Forbidden, err.Code)
	})

	t.Run("受邀未接受的成员可以下载", func(t *testing.T) {
		info, err := service.Download(uploaded.ID, invited.ID)
		assert.Nil(t, err)
		assert.Equal(t, "需求说明书.docx", info.OriginalFilename)

		data, readErr := os.ReadFile(info.FilePath)
		assert.NoError(t, readErr)
		assert.Equal(t, content, data)
	})

	t.Run("非成员不能下载", func(t *testing.T) {
		_, err := service.Download(uploaded.ID, outsider.ID)
		assert.NotNil(t, err)
		assert.Equal(t, response.Forbidden, err.Code)
	})

	t.Run("文件不存在返回 404", func(t *testing.T) {
		_, err := service.Download(99999, owner.ID)
		assert.NotNil(t, err)
		assert.Equal(t, response.NotFound, err.Code)
	})
}

// TestUploadRejections 上传的权限与大小限制
func TestUploadRejections(t *testing.T) {
	testutils.SetupTestConfig(t)
	db := testutils.SetupTestDB(t)
	service := NewFileService(db)

	owner := testutils.CreateTestUser(db, testutils.WithRole(userModel.RoleExternal))
	ws := testutils.CreateTestWorkspace(db, owner.ID)
	outsider := testutils.CreateTestUser(db)

	fh := makeFileHeader(t, "a.txt", []byte("hello"))

	t.Run("非成员不能上传", func(t *testing.T) {
		_, err := service.Upload(ws.ID, outsider.ID, fh, "", saveTo(fh))
		assert.NotNil(t, err)
		assert.Equal(t, response.Forbidden, err.Code)
	})

	t.Run("超出大小上限被拒绝", func(t *testing.T) {
		big := makeFileHeader(t, "big.bin", bytes.Repeat([]byte("x"), 2<<20))
		_, err := service.Upload(ws.ID, owner.ID, big, "", saveTo(big))
		assert.NotNil(t, err)
		assert.Equal(t, "文件超出大小限制", err.Msg)
	})
}
