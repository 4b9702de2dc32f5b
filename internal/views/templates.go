package views

import "html/template"

const dashboardTemplate = `<section class="space-y-6">
  <h1 class="text-2xl font-bold">داشبورد پژوهش</h1>
  <p class="text-gray-600">از منوی کناری یک ابزار را انتخاب کنید یا با یکی از کارت‌های زیر شروع کنید.</p>
  <div class="grid grid-cols-1 md:grid-cols-3 gap-4">
    {{- range .}}
    <a href="#{{.View}}" data-navigate="{{.View}}" class="nav-card block rounded-lg bg-white p-6 shadow hover:shadow-md">
      <i data-lucide="{{.Icon}}"></i>
      <h2 class="mt-2 font-semibold">{{.Label}}</h2>
      <p class="text-sm text-gray-500">{{.Blurb}}</p>
    </a>
    {{- end}}
  </div>
</section>`

const searchTemplate = `<section class="space-y-6">
  <h1 class="text-2xl font-bold">جستجوی مقالات</h1>
  <form data-action="search" class="flex gap-2">
    <input name="query" type="text" required class="flex-1 rounded border px-3 py-2" placeholder="موضوع پژوهش را وارد کنید">
    <button type="submit" class="rounded bg-indigo-600 px-4 py-2 text-white"><i data-lucide="search"></i></button>
  </form>
  <div id="search-results"></div>
</section>`

const proposalTemplate = `<section class="space-y-6">
  <h1 class="text-2xl font-bold">پروپوزال جدید</h1>
  <form data-action="generate-proposal" class="space-y-4">
    <input name="topic" type="text" required class="w-full rounded border px-3 py-2" placeholder="موضوع اصلی پروپوزال">
    <textarea name="sections" rows="6" class="w-full rounded border px-3 py-2" placeholder="هر بخش در یک خط: عنوان: توضیحات">{{.}}</textarea>
    <button type="submit" class="rounded bg-indigo-600 px-4 py-2 text-white">تولید پروپوزال</button>
  </form>
  <article id="proposal-output" class="prose max-w-none"></article>
</section>`

const metaAnalysisTemplate = `<section class="space-y-6">
  <h1 class="text-2xl font-bold">متاآنالیز</h1>
  <form data-action="analyze" class="flex gap-2">
    <input name="query" type="text" required class="flex-1 rounded border px-3 py-2" placeholder="پرسش پژوهش">
    <button type="submit" class="rounded bg-indigo-600 px-4 py-2 text-white"><i data-lucide="bar-chart-3"></i></button>
  </form>
  <div id="analysis-output"></div>
</section>`

const articlesTemplate = `<p class="text-sm text-gray-500">{{.ResultsCount}} مقاله یافت شد</p>
<ul class="space-y-4">
  {{- range .Articles}}
  <li class="rounded-lg bg-white p-4 shadow" data-article-id="{{.ID}}">
    <h3 class="font-semibold" dir="ltr">{{.Title}}</h3>
    <p class="text-sm text-gray-500" dir="ltr">{{.Authors}} · {{.Journal}} · {{.Year}}</p>
    <p class="mt-2">{{.Abstract}}</p>
    <div class="mt-2 flex items-center gap-4 text-sm">
      <span><i data-lucide="quote"></i> {{.Citations}}</span>
      <a href="{{.PDFURL}}" class="text-indigo-600"><i data-lucide="file-text"></i> PDF</a>
    </div>
  </li>
  {{- end}}
</ul>`

const analysisTemplate = `<h2 class="font-semibold">نتایج تحلیل برای «{{.Query}}»</h2>
<table class="mt-4 w-full text-right">
  <thead><tr><th>مقاله</th><th>تحلیل</th></tr></thead>
  <tbody>
    {{- range .Analyzed}}
    <tr data-article-id="{{.ArticleID}}"><td dir="ltr">{{.Title}}</td><td>{{.Analysis}}</td></tr>
    {{- end}}
  </tbody>
</table>
{{- if .Skipped}}
<p class="mt-2 text-sm text-amber-600">{{len .Skipped}} مقاله به دلیل خطا نادیده گرفته شد.</p>
{{- end}}`

const messageTemplate = `<div class="rounded border p-4 {{.Class}}">{{.Text}}</div>`

var (
	dashboardTmpl    = template.Must(template.New("dashboard").Parse(dashboardTemplate))
	searchTmpl       = template.Must(template.New("search").Parse(searchTemplate))
	proposalTmpl     = template.Must(template.New("proposal").Parse(proposalTemplate))
	metaAnalysisTmpl = template.Must(template.New("meta-analysis").Parse(metaAnalysisTemplate))
	articlesTmpl     = template.Must(template.New("articles").Parse(articlesTemplate))
	analysisTmpl     = template.Must(template.New("analysis").Parse(analysisTemplate))
	messageTmpl      = template.Must(template.New("message").Parse(messageTemplate))
)
